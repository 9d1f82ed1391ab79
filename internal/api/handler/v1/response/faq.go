package response

type FaqStatusResponse struct {
	Status      string `json:"status"`
	IsPublished bool   `json:"is_published"`
}
