package models

import "time"

// User est le document de compte dans MongoDB : rôle, panier, likes et
// liste de marques autorisées vivent dessus.
type User struct {
	ID            string     `bson:"_id" json:"user_id"`
	Email         string     `bson:"email" json:"email"`
	Password      string     `bson:"password" json:"-"`
	Name          string     `bson:"name,omitempty" json:"name,omitempty"`
	Role          string     `bson:"role,omitempty" json:"role,omitempty"`
	AgentID       string     `bson:"agent_id,omitempty" json:"agent_id,omitempty"`
	Cart          []CartItem `bson:"cart" json:"cart"`
	CartRev       int64      `bson:"cart_rev" json:"-"`
	Likes         []string   `bson:"likes" json:"likes"`
	AllowedBrands []string   `bson:"allowed_brands,omitempty" json:"allowed_brands,omitempty"`
	LastOrderID   string     `bson:"last_order_id,omitempty" json:"last_order_id,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

const (
	RoleClient = "client"
	RoleAgent  = "agent"
	RoleAdmin  = "admin"
)
