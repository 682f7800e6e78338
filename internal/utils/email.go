package utils

import (
	"fmt"
	"log"
	"os"

	"catalog_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderEmail envoie la confirmation d'une nouvelle commande à l'agent
// assigné, avec le QR de suivi en pièce jointe inline.
func SendOrderEmail(to string, order models.Order, qrBase64 string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST non configuré")
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@localhost"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("🧾 Nouvelle commande de %s", order.ClientName))
	msg.SetBodyString(mail.TypeTextHTML, orderEmailHTML(order, qrBase64))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

func orderEmailHTML(order models.Order, qrBase64 string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
			</tr>`, item.Name, item.Barcode, item.Quantity, item.Price)
	}

	qrHTML := ""
	if qrBase64 != "" {
		qrHTML = fmt.Sprintf(`<p style="text-align: center;"><img src="%s" alt="QR commande" width="180"></p>`, qrBase64)
	}

	notesHTML := ""
	if order.Notes != "" {
		notesHTML = fmt.Sprintf(`<p><strong>Notes du client:</strong> %s</p>`, order.Notes)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Nouvelle commande #%s</h2>
		<p>Client : <strong>%s</strong></p>
		%s
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: right; border: 1px solid #ddd;">Produit</th>
					<th style="padding: 8px; text-align: right; border: 1px solid #ddd;">Code-barres</th>
					<th style="padding: 8px; text-align: right; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 8px; text-align: right; border: 1px solid #ddd;">Prix</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
		%s
	</div>
</body>
</html>`, order.ID[:8], order.ClientName, notesHTML, itemsHTML, qrHTML)
}
