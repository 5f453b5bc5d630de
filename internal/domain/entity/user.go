package entity

import "time"

const (
	UserTypeFarmer = "farmer"
	UserTypeBuyer  = "buyer"
)

type GeoPoint struct {
	Address string `json:"address" firestore:"address"`
	// Coordinates are stored [longitude, latitude].
	Coordinates []float64 `json:"coordinates,omitempty" firestore:"coordinates,omitempty"`
}

type Rating struct {
	Average float64 `json:"average" firestore:"average"`
	Count   int     `json:"count" firestore:"count"`
}

type User struct {
	ID           string   `json:"id" firestore:"id"`
	Name         string   `json:"name" firestore:"name"`
	Email        string   `json:"email" firestore:"email"`
	PasswordHash string   `json:"-" firestore:"passwordHash"`
	UserType     string   `json:"user_type" firestore:"userType"` // "farmer" or "buyer"
	Location     GeoPoint `json:"location" firestore:"location"`
	Phone        string   `json:"phone" firestore:"phone"`
	ProfileImage string   `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`
	Bio          string   `json:"bio,omitempty" firestore:"bio,omitempty"`

	// Buyer profile
	CompanyName string `json:"company_name,omitempty" firestore:"companyName,omitempty"`

	// Farmer profile
	FarmSize float64  `json:"farm_size,omitempty" firestore:"farmSize,omitempty"`
	FarmType []string `json:"farm_type,omitempty" firestore:"farmType,omitempty"`
	Crops    []string `json:"crops,omitempty" firestore:"crops,omitempty"`

	Verified bool   `json:"verified" firestore:"verified"`
	Ratings  Rating `json:"ratings" firestore:"ratings"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsFarmer() bool {
	return u.UserType == UserTypeFarmer
}
