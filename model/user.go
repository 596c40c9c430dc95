package model

import "time"

const RoleEmployee = "Employee"

type User struct {
	UserID   string `firestore:"-"`
	Email    string `firestore:"email"`
	Username string `firestore:"username"`
	Password string `firestore:"password"`
	Role     string `firestore:"rol"` // "Employee" unless changed by an admin
	// LastLogin is zero when the stored value is missing or unreadable.
	LastLogin time.Time `firestore:"last_login,serverTimestamp"`
	// LegacyLastLogin keeps a free-text last_login written by older clients.
	LegacyLastLogin string `firestore:"-"`
}
