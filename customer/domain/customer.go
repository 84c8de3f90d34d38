package domain

import "time"

// Customer is the locally owned identity record. Email is unique across the
// collection. BillingAccountID references the external billing account
// mirror and is empty only for records whose billing provisioning failed
// mid-registration and was rolled back.
type Customer struct {
	ID               string    `firestore:"-" json:"id"`
	Name             string    `firestore:"name" json:"name"`
	Email            string    `firestore:"email" json:"email"`
	PasswordHash     string    `firestore:"passwordHash" json:"-"`
	Phone            string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	Address          string    `firestore:"address,omitempty" json:"address,omitempty"`
	BillingAccountID string    `firestore:"billingAccountId" json:"billingAccountId,omitempty"`
	AvatarObject     string    `firestore:"avatarObject,omitempty" json:"-"`
	TimeCreated      time.Time `firestore:"timeCreated" json:"createdAt"`
	TimeModified     time.Time `firestore:"timeModified" json:"updatedAt"`
}

// ProfileUpdate is a partial update of the mutable identity fields. Email and
// password change through dedicated flows, never through a profile patch.
type ProfileUpdate struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.Address == nil
}

// RegisterInput carries a registration request into the service layer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// Session is an authenticated customer with a freshly issued token.
type Session struct {
	Token    string    `json:"token"`
	Customer *Customer `json:"customer"`
}
