package database

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account in the system. Field names mirror the documents
// already stored in the `users` collection.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome           string             `bson:"nome" json:"nome"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashedPassword" json:"-"`
	UserType       string             `bson:"user_type" json:"user_type"`
}

// Template is a saved set of styling choices for the signature (colors,
// background image, logo).
type Template struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome                 string             `bson:"nome" json:"nome"`
	ContainerBorderColor string             `bson:"containerBorderColor,omitempty" json:"containerBorderColor,omitempty"`
	ImgBorderColor       string             `bson:"imgBorderColor,omitempty" json:"imgBorderColor,omitempty"`
	DivisionBarColor     string             `bson:"divisionBarColor,omitempty" json:"divisionBarColor,omitempty"`
	NomeColor            string             `bson:"nomeColor,omitempty" json:"nomeColor,omitempty"`
	SetorColor           string             `bson:"setorColor,omitempty" json:"setorColor,omitempty"`
	IconsColor           string             `bson:"iconsColor,omitempty" json:"iconsColor,omitempty"`
	InfoColor            string             `bson:"infoColor,omitempty" json:"infoColor,omitempty"`
	BackgroundImg        string             `bson:"backgroundImg,omitempty" json:"backgroundImg,omitempty"`
	BackgroundID         string             `bson:"backgroundId,omitempty" json:"backgroundId,omitempty"`
	LogoContas           string             `bson:"logoContas,omitempty" json:"logoContas,omitempty"`
	LogoContasID         string             `bson:"logoContasId,omitempty" json:"logoContasId,omitempty"`
	IsActive             bool               `bson:"isActive" json:"isActive"`
}
