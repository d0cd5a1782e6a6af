package dto

type CreateQRCodeRequest struct {
	URL  string `json:"url" binding:"required"`
	Size int    `json:"size"`
}

type Link struct {
	Rel    string   `json:"rel"`
	Href   string   `json:"href"`
	Action string   `json:"action"`
	Types  []string `json:"types"`
}

type QRCodeResponse struct {
	Message   string `json:"message"`
	QRCodeURL string `json:"qr_code_url"`
	Links     []Link `json:"links"`
}
