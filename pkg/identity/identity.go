package identity

import "github.com/golang-jwt/jwt/v5"

// Identity is the acting principal for every service operation. The
// services trust it verbatim; authentication happens in the API layer.
type Identity struct {
	UserID  uint
	IsAdmin bool
}

// CanMutate reports whether the actor may mutate a resource owned by
// ownerID. Owners and administrators may; everyone else may not.
func CanMutate(actor Identity, ownerID uint) bool {
	return actor.IsAdmin || actor.UserID == ownerID
}

// Claims is the JWT payload carried by authenticated requests.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, IsAdmin: c.IsAdmin}
}
