package deal

import "findmygym/internal/domain"

type GymRef struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"imageUrl"`
	Address  string  `json:"address"`
}

type View struct {
	domain.Deal
	Gym *GymRef `json:"gym"`
}

func ToView(d domain.Deal) View {
	v := View{Deal: d}
	if d.Gym != nil {
		v.Gym = &GymRef{Name: d.Gym.Name, Slug: d.Gym.Slug, ImageURL: d.Gym.ImageURL, Address: d.Gym.Address}
	}
	return v
}

type ListResponse struct {
	Deals []View `json:"deals"`
}
