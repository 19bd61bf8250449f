package domain

var (
	MessageSuccessFindNearby = "nearby places retrieved successfully"
	MessageFailedFindNearby  = "failed to find nearby places"
)

type (
	FindNearbyRequest struct {
		Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
		Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	}

	NearbyPlace struct {
		Title string `json:"title"`
		URI   string `json:"uri,omitempty"`
	}

	FindNearbyResponse struct {
		Places []NearbyPlace `json:"places"`
	}
)
