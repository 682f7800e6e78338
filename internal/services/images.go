package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"catalog_back_end/internal/database"
)

// Durée de vie des URLs signées MinIO.
const signedURLTTL = time.Hour

// ImageResolver construit la chaîne ordonnée d'URLs candidates pour un
// code-barres : CDN externe → dossier tl/ → dossier media/ → image par
// défaut. Le client ne passe au candidat suivant que sur échec de
// chargement du précédent ; le serveur ne sonde rien.
type ImageResolver struct {
	// Template d'URL du CDN, avec %s pour le code-barres. Les paramètres de
	// transformation (format/qualité auto, recadrage, dimensions) font
	// partie du template.
	Template string
	// Bucket MinIO des images locales.
	Bucket string
	// Placeholder servi en dernier recours.
	Placeholder string
}

// NewImageResolver lit la configuration depuis l'environnement.
func NewImageResolver() *ImageResolver {
	template := os.Getenv("IMAGE_CDN_TEMPLATE")
	if template == "" {
		template = "https://images.example.com/f_auto,q_auto,c_fill,w_400,h_400/%s.jpg"
	}
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "catalog-images"
	}
	placeholder := os.Getenv("IMAGE_PLACEHOLDER")
	if placeholder == "" {
		placeholder = "media/placeholder.png"
	}
	return &ImageResolver{Template: template, Bucket: bucket, Placeholder: placeholder}
}

// Candidates renvoie la chaîne de repli complète pour un code-barres.
// Sans code-barres, seul le placeholder reste.
func (r *ImageResolver) Candidates(barcode string) []string {
	if barcode == "" {
		return []string{r.Placeholder}
	}

	candidates := []string{fmt.Sprintf(r.Template, barcode)}
	for _, folder := range []string{"tl", "media"} {
		candidates = append(candidates, r.localURL(folder, barcode))
	}
	return append(candidates, r.Placeholder)
}

// localURL : URL signée MinIO si le client est connecté, sinon chemin
// statique relatif servi par le front.
func (r *ImageResolver) localURL(folder, barcode string) string {
	object := fmt.Sprintf("%s/%s.jpg", folder, barcode)
	if database.MinIO == nil {
		return object
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	signed, err := database.MinIO.PresignedGetObject(ctx, r.Bucket, object, signedURLTTL, url.Values{})
	if err != nil {
		return object
	}
	return signed.String()
}
