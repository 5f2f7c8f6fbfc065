package review

import "findmygym/internal/domain"

type CreateReviewRequest struct {
	GymID         int64    `json:"gymId" validate:"required,gt=0"`
	Rating        float64  `json:"rating" validate:"required,gte=1,lte=5"`
	Cleanliness   *float64 `json:"cleanliness" validate:"omitempty,gte=1,lte=5"`
	Equipment     *float64 `json:"equipment" validate:"omitempty,gte=1,lte=5"`
	Staff         *float64 `json:"staff" validate:"omitempty,gte=1,lte=5"`
	ValueForMoney *float64 `json:"valueForMoney" validate:"omitempty,gte=1,lte=5"`
	Text          string   `json:"text" validate:"required"`
}

// normalize drops zero category scores, which clients send for "not rated".
func (r *CreateReviewRequest) normalize() {
	for _, p := range []**float64{&r.Cleanliness, &r.Equipment, &r.Staff, &r.ValueForMoney} {
		if *p != nil && **p == 0 {
			*p = nil
		}
	}
}

type ReportRequest struct {
	Reason string `json:"reason" validate:"required"`
}

const (
	SortRecent  = "recent"
	SortHighest = "highest"
	SortLowest  = "lowest"
	SortHelpful = "helpful"
)

type ListFilters struct {
	GymID  int64
	UserID int64
	// Rating keeps reviews with rating in [Rating, Rating+1).
	Rating int
	Sort   string
	Page   int
	Limit  int
}

type ListResponse struct {
	Reviews    []View `json:"reviews"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// View is a review with its author's public fields.
type View struct {
	domain.Review
	User *domain.UserRef `json:"user"`
}

func ToView(r domain.Review) View {
	return View{Review: r, User: r.User.Ref()}
}

type HelpfulResponse struct {
	Action string `json:"action"`
}
