package config

import (
	"github.com/inkmatch/inkdeck/internal/carousel"
)

// Config is the root of a showcase configuration file.
type Config struct {
	Version  string   `yaml:"version" validate:"required"`
	Title    string   `yaml:"title" validate:"required,max=80"`
	Tagline  string   `yaml:"tagline,omitempty" validate:"omitempty,max=160"`
	Items    []Item   `yaml:"items" validate:"dive"`
	Settings Settings `yaml:"settings,omitempty"`
}

// Item describes one showcase card. Order in the file defines circular
// adjacency in the carousel.
type Item struct {
	ID              string `yaml:"id" validate:"required,item_id"`
	Title           string `yaml:"title" validate:"required,max=80"`
	Description     string `yaml:"description,omitempty" validate:"omitempty,max=400"`
	CTALabel        string `yaml:"cta_label,omitempty" validate:"omitempty,max=40"`
	VideoID         string `yaml:"video_id,omitempty" validate:"omitempty,video_id"`
	BackgroundImage string `yaml:"background_image,omitempty" validate:"omitempty,url"`
}

// Settings carries presentation options.
type Settings struct {
	Theme                string `yaml:"theme,omitempty" validate:"omitempty,oneof=system light dark"`
	NudgeIntervalSeconds int    `yaml:"nudge_interval,omitempty" validate:"omitempty,min=5,max=3600"`
}

// CarouselItems converts the configured items into the carousel's read-only
// form.
func (c *Config) CarouselItems() []carousel.Item {
	if c == nil {
		return nil
	}
	items := make([]carousel.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = carousel.Item{
			ID:              it.ID,
			Title:           it.Title,
			Description:     it.Description,
			CTALabel:        it.CTALabel,
			VideoID:         it.VideoID,
			BackgroundImage: it.BackgroundImage,
		}
	}
	return items
}
