package aboutpage

import (
	"strings"

	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrImageURLRequired   = apperr.BadRequest("Image URL is required")
	ErrInvalidImageTarget = apperr.BadRequest("Invalid image target")
	ErrInvalidImageIndex  = apperr.BadRequest("Invalid image index")
)

// ImageInput is the body for attaching an image.
type ImageInput struct {
	URL string `json:"url"`
}

// images resolves (section, id) to the images slice it names. The story
// takes no id; values, milestones and communityImpacts need the item id.
func images(p *models.AboutPage, section, id string) (*[]string, error) {
	if section == SectionStory {
		if p.Story.Images == nil {
			p.Story.Images = []string{}
		}
		return &p.Story.Images, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidImageTarget
	}

	switch section {
	case SectionValues:
		if v, err := values(p).Get(oid); err == nil {
			return &v.Images, nil
		}
	case SectionMilestones:
		if m, err := milestones(p).Get(oid); err == nil {
			return &m.Images, nil
		}
	case SectionCommunityImpacts:
		if c, err := impacts(p).Get(oid); err == nil {
			return &c.Images, nil
		}
	}
	return nil, ErrInvalidImageTarget
}

// AddImage appends url to the target's images and returns them.
func AddImage(p *models.AboutPage, section, id, url string) ([]string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrImageURLRequired
	}
	imgs, err := images(p, section, id)
	if err != nil {
		return nil, err
	}
	*imgs = append(*imgs, url)
	return *imgs, nil
}

// RemoveImage deletes the image at index from the target and returns the
// remaining images. An index outside [0, len) leaves the list untouched.
func RemoveImage(p *models.AboutPage, section, id string, index int) ([]string, error) {
	imgs, err := images(p, section, id)
	if err != nil {
		return nil, err
	}
	s := *imgs
	if index < 0 || index >= len(s) {
		return nil, ErrInvalidImageIndex
	}
	*imgs = append(s[:index:index], s[index+1:]...)
	return *imgs, nil
}
