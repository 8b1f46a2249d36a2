package venue

type CreateVenueRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Location    string `json:"location" binding:"max=300"`
	Capacity    *int   `json:"capacity" binding:"omitempty,min=0"`
	SurfaceType string `json:"surfaceType" binding:"max=50"`
	IsIndoor    bool   `json:"isIndoor"`
}

type UpdateVenueRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Location    *string `json:"location" binding:"omitempty,max=300"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=0"`
	SurfaceType *string `json:"surfaceType" binding:"omitempty,max=50"`
	IsIndoor    *bool   `json:"isIndoor"`
	IsActive    *bool   `json:"isActive"`
}
