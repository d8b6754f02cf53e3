package catalog

type ItemResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

type ListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

func toItemResponse(it Item) ItemResponse {
	return ItemResponse{
		ID:    it.ID,
		Name:  it.Name,
		Price: it.UnitPrice.StringFixed(2),
		Image: it.ImageRef,
	}
}

func toListResponse(items []Item) ListResponse {
	res := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toItemResponse(it))
	}
	return ListResponse{Items: res, Total: len(res)}
}
