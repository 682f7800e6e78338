package utils

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateOrderQR génère un QR de suivi de commande en base64, prêt à mettre
// dans un <img src="...">.
func GenerateOrderQR(orderID string) (string, error) {
	base := os.Getenv("ORDERS_BASE_URL")
	if base == "" {
		base = "http://localhost:8080/api/orders"
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/%s", base, orderID), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
