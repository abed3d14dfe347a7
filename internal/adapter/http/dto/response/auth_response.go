package response

import "clicknova_admin/internal/domain/entities"

type LoginResponse struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

type UploadResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"objectName"`
}
