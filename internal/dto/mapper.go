package dto

import (
	"fmt"

	"qr-code-service/internal/domain"
)

// DownloadURL is where the file server exposes a stored QR code.
func DownloadURL(baseURL, downloadFolder, filename string) string {
	return fmt.Sprintf("%s/%s/%s", baseURL, downloadFolder, filename)
}

// BuildLinks produces the hypermedia links attached to every QR code response.
func BuildLinks(filename, baseURL, downloadURL string) []Link {
	return []Link{
		{
			Rel:    "self",
			Href:   downloadURL,
			Action: "GET",
			Types:  []string{"image/png"},
		},
		{
			Rel:    "delete",
			Href:   fmt.Sprintf("%s/qr-codes/%s", baseURL, filename),
			Action: "DELETE",
			Types:  []string{"application/json"},
		},
	}
}

func ToCreatedResponse(qr *domain.QRCode, baseURL, downloadFolder string) QRCodeResponse {
	downloadURL := DownloadURL(baseURL, downloadFolder, qr.Filename)
	return QRCodeResponse{
		Message:   "QR code created successfully.",
		QRCodeURL: downloadURL,
		Links:     BuildLinks(qr.Filename, baseURL, downloadURL),
	}
}

func ToListResponse(codes []*domain.QRCode, baseURL, downloadFolder string) []QRCodeResponse {
	items := make([]QRCodeResponse, 0, len(codes))
	for _, qr := range codes {
		downloadURL := DownloadURL(baseURL, downloadFolder, qr.Filename)
		items = append(items, QRCodeResponse{
			Message:   "QR code available",
			QRCodeURL: qr.URL,
			Links:     BuildLinks(qr.Filename, baseURL, downloadURL),
		})
	}
	return items
}
