package giftlist

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type CreateListRequest struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

func (r CreateListRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(3, 50).Error("name must be 3-50 characters"),
		),
	)
}

// UpdateListRequest is a partial update: nil means "leave unchanged".
type UpdateListRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

func (r UpdateListRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.Length(3, 50).Error("name must be 3-50 characters"),
		),
	)
}

type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	Preference  string  `json:"preference"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(3, 50).Error("name must be 3-50 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 200).Error("description cannot exceed 200 characters"),
		),
		validation.Field(&r.URL, is.URL.Error("must be a valid URL")),
		validation.Field(&r.Preference,
			validation.In(PreferenceLow, PreferenceMedium, PreferenceHigh).Error("invalid preference"),
		),
	)
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	Preference  *string `json:"preference"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.Length(3, 50).Error("name must be 3-50 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 200).Error("description cannot exceed 200 characters"),
		),
		validation.Field(&r.Preference,
			validation.In(PreferenceLow, PreferenceMedium, PreferenceHigh).Error("invalid preference"),
		),
	)
}

// ManageItemResponse is the celebrant-facing projection. It has no claim
// fields, and Status is always written as AVAILABLE by the constructor, so
// this view cannot leak claim state.
type ManageItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	URL         *string   `json:"url"`
	Preference  string    `json:"preference"`
	Status      string    `json:"status"`
}

type ManageListResponse struct {
	ID       uuid.UUID            `json:"id"`
	Name     string               `json:"name"`
	Slug     string               `json:"slug"`
	ImageURL *string              `json:"imageUrl"`
	Items    []ManageItemResponse `json:"items"`
}

// PublicItemResponse is the guest-facing projection. Items claimed by other
// guests are filtered out before this type is built, so IsClaimedByMe is
// only ever true for the caller's own claims.
type PublicItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	URL           *string   `json:"url"`
	Preference    string    `json:"preference"`
	Status        string    `json:"status"`
	IsClaimedByMe bool      `json:"isClaimedByMe"`
}

type PublicListResponse struct {
	ID       uuid.UUID            `json:"id"`
	Name     string               `json:"name"`
	Slug     string               `json:"slug"`
	ImageURL *string              `json:"imageUrl"`
	Items    []PublicItemResponse `json:"items"`
}

// ToManageItemResponse masks the claim state: whatever the row says, the
// celebrant sees AVAILABLE.
func ToManageItemResponse(item GiftItem) ManageItemResponse {
	return ManageItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		URL:         item.URL,
		Preference:  item.Preference,
		Status:      StatusAvailable,
	}
}

func ToManageListResponse(list GiftList, items []GiftItem) ManageListResponse {
	masked := make([]ManageItemResponse, 0, len(items))
	for _, item := range items {
		masked = append(masked, ToManageItemResponse(item))
	}
	return ManageListResponse{
		ID:       list.ID,
		Name:     list.Name,
		Slug:     list.Slug,
		ImageURL: list.ImageURL,
		Items:    masked,
	}
}

// ToPublicListResponse builds the guest view: available items plus the
// caller's own claims. Items claimed by anyone else are omitted entirely,
// not just flagged.
func ToPublicListResponse(list GiftList, items []ItemWithClaim, viewerAccessID uuid.UUID) PublicListResponse {
	visible := make([]PublicItemResponse, 0, len(items))
	for _, it := range items {
		claimedByMe := it.ClaimedBy != nil && *it.ClaimedBy == viewerAccessID
		if it.Item.Status != StatusAvailable && !claimedByMe {
			continue
		}
		visible = append(visible, PublicItemResponse{
			ID:            it.Item.ID,
			Name:          it.Item.Name,
			Description:   it.Item.Description,
			URL:           it.Item.URL,
			Preference:    it.Item.Preference,
			Status:        it.Item.Status,
			IsClaimedByMe: claimedByMe,
		})
	}
	return PublicListResponse{
		ID:       list.ID,
		Name:     list.Name,
		Slug:     list.Slug,
		ImageURL: list.ImageURL,
		Items:    visible,
	}
}
