package request

import "clicknova_admin/internal/domain/entities"

type CatalogServiceRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
}

func (r CatalogServiceRequest) ToEntity(id string) entities.CatalogService {
	return entities.CatalogService{ID: id, ServiceName: r.ServiceName}
}
