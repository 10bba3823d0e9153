package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Username   string             `bson:"username"`
	Email      string             `bson:"email"`
	Password   string             `bson:"password"`
	FullName   string             `bson:"full_name"`
	Avatar     string             `bson:"avatar,omitempty"`
	CoverImage string             `bson:"cover_image,omitempty"`
	Role       string             `bson:"role"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}
