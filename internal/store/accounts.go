// Package store est la couche de persistance MongoDB : document de compte
// (panier, likes, marques autorisées), commandes et notifications.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog_back_end/internal/account"
	"catalog_back_end/internal/database"
	"catalog_back_end/internal/models"
)

var (
	ErrNoIdentity = errors.New("non authentifié")
	ErrNoAccount  = errors.New("compte introuvable")
	ErrNotFound   = errors.New("document introuvable")
	ErrConflict   = errors.New("conflit d'écriture concurrent")
)

const opTimeout = 10 * time.Second

// Bornage des reprises CAS sur le panier.
const maxCartRetries = 3

func usersCol() *mongo.Collection { return database.MongoDB.Collection("users") }

// GetUser charge le document de compte. Échec fermé : sentinelle, jamais de
// panique, quand l'identité manque ou que le document n'existe pas.
func GetUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrNoIdentity
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user models.User
	err := usersCol().FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNoAccount
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CreateUser insère un nouveau document de compte.
func CreateUser(ctx context.Context, user models.User) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := usersCol().InsertOne(ctx, user)
	return err
}

// FindUserByEmail cherche un compte par e-mail (égalité).
func FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user models.User
	err := usersCol().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNoAccount
	}
	return user, err
}

// mutateCart applique une fonction pure sur le tableau panier sous garde
// optimiste (cart_rev) : pas d'écrasement aveugle du document, une écriture
// concurrente fait rejouer la lecture. Reprises bornées.
func mutateCart(ctx context.Context, userID string, fn func([]models.CartItem) ([]models.CartItem, error)) ([]models.CartItem, error) {
	for attempt := 0; attempt < maxCartRetries; attempt++ {
		user, err := GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		cart, err := fn(user.Cart)
		if err != nil {
			return nil, err
		}

		opCtx, cancel := context.WithTimeout(ctx, opTimeout)
		res, err := usersCol().UpdateOne(opCtx,
			bson.M{"_id": userID, "cart_rev": user.CartRev},
			bson.M{"$set": bson.M{"cart": cart}, "$inc": bson.M{"cart_rev": 1}},
		)
		cancel()
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 1 {
			return cart, nil
		}
		// cart_rev a bougé entre lecture et écriture : on rejoue
	}
	return nil, ErrConflict
}

// AddToCart ajoute un article (ou incrémente sa quantité par code-barres).
func AddToCart(ctx context.Context, userID string, item models.CartItem, quantity int) ([]models.CartItem, error) {
	return mutateCart(ctx, userID, func(cart []models.CartItem) ([]models.CartItem, error) {
		return account.AddItem(cart, item, quantity), nil
	})
}

// UpdateQuantity écrase la quantité ; ≤ 0 retire l'article.
func UpdateQuantity(ctx context.Context, userID, barcode string, quantity int) ([]models.CartItem, error) {
	return mutateCart(ctx, userID, func(cart []models.CartItem) ([]models.CartItem, error) {
		return account.UpdateQuantity(cart, barcode, quantity)
	})
}

// RemoveFromCart retire l'article ; absent = succès.
func RemoveFromCart(ctx context.Context, userID, barcode string) ([]models.CartItem, error) {
	return mutateCart(ctx, userID, func(cart []models.CartItem) ([]models.CartItem, error) {
		return account.RemoveItem(cart, barcode), nil
	})
}

// ToggleLike ajoute ou retire un code-barres des likes du compte, via les
// primitives atomiques $addToSet/$pull, et renvoie le nouvel état
// d'appartenance.
func ToggleLike(ctx context.Context, userID, barcode string) (bool, error) {
	user, err := GetUser(ctx, userID)
	if err != nil {
		return false, err
	}

	liked := false
	for _, b := range user.Likes {
		if b == barcode {
			liked = true
			break
		}
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var update bson.M
	if liked {
		update = bson.M{"$pull": bson.M{"likes": barcode}}
	} else {
		update = bson.M{"$addToSet": bson.M{"likes": barcode}}
	}
	if _, err := usersCol().UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
		return liked, err
	}
	return !liked, nil
}

// FindAdmins renvoie tous les comptes dont le rôle est admin.
func FindAdmins(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := usersCol().Find(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []models.User
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}
