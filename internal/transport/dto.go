package transport

// Request fields are pointers so an absent key can be told apart from a zero value.

type ProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Color       *string  `json:"color"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
}

func (r ProductRequest) Missing() []string {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Description == nil {
		missing = append(missing, "description")
	}
	if r.Color == nil {
		missing = append(missing, "color")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	if r.Image == nil {
		missing = append(missing, "image")
	}
	return missing
}

type CartItemRequest struct {
	ProductID *int `json:"product_id"`
	Count     *int `json:"count"`
}

func (r CartItemRequest) Missing() []string {
	var missing []string
	if r.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if r.Count == nil {
		missing = append(missing, "count")
	}
	return missing
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

type MissingFieldsResponse struct {
	Message string   `json:"message"`
	Missing []string `json:"missing"`
}
