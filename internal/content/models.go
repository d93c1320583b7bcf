package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media is a stored or external media reference shared by every section type.
// PublicID is only set for objects the service stored itself.
type Media struct {
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	Alt      string `bson:"alt,omitempty" json:"alt,omitempty"`
	PublicID string `bson:"publicId,omitempty" json:"publicId,omitempty"`
}

// IsZero reports whether the reference is unset.
func (m Media) IsZero() bool { return m.URL == "" }

// DocMeta carries identity and timestamps common to all section documents.
type DocMeta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (d *DocMeta) DocID() string { return d.ID.Hex() }

func (d *DocMeta) SetDocID(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	d.ID = oid
	return nil
}

// Stamp sets UpdatedAt, and CreatedAt on first write.
func (d *DocMeta) Stamp(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}

func (d *DocMeta) Created() time.Time { return d.CreatedAt }

// Section is implemented by every page-section document. Field exposes the
// values usable as equality filters on list endpoints (wire names), SortKey
// drives the (isFeatured desc, order asc, createdAt desc) default ordering.
type Section interface {
	DocID() string
	SetDocID(id string) error
	Stamp(now time.Time)
	Created() time.Time
	SortKey() (featured bool, order int)
	Field(name string) (interface{}, bool)
}

// Button is a hero call-to-action.
type Button struct {
	Text  string `bson:"text" json:"text"`
	Link  string `bson:"link" json:"link"`
	Style string `bson:"style,omitempty" json:"style,omitempty"` // primary | outline
}

// Stat is a headline figure shown on the hero section.
type Stat struct {
	Number string `bson:"number" json:"number"`
	Label  string `bson:"label" json:"label"`
	Icon   string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Hero is a landing banner. Many may coexist, ordered by `order`.
type Hero struct {
	DocMeta         `bson:",inline"`
	Title           string   `bson:"title" json:"title"`
	Subtitle        string   `bson:"subtitle" json:"subtitle"`
	BackgroundImage Media    `bson:"backgroundImage" json:"backgroundImage"`
	Buttons         []Button `bson:"buttons,omitempty" json:"buttons,omitempty"`
	Stats           []Stat   `bson:"stats,omitempty" json:"stats,omitempty"`
	IsActive        bool     `bson:"isActive" json:"isActive"`
	Order           int      `bson:"order" json:"order"`
}

func (h *Hero) SortKey() (bool, int) { return false, h.Order }

func (h *Hero) Field(name string) (interface{}, bool) {
	switch name {
	case "isActive":
		return h.IsActive, true
	}
	return nil, false
}

// Feature is an icon+text blurb on the about section.
type Feature struct {
	Icon        string `bson:"icon" json:"icon"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// OverlayContent is the text block layered over the about image.
type OverlayContent struct {
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
}

// About is the studio presentation section. Singleton: creating a second one
// is rejected.
type About struct {
	DocMeta     `bson:",inline"`
	Title       string         `bson:"title" json:"title"`
	Subtitle    string         `bson:"subtitle" json:"subtitle"`
	Description []string       `bson:"description" json:"description"`
	Image       Media          `bson:"image" json:"image"`
	Features    []Feature      `bson:"features" json:"features"`
	Overlay     OverlayContent `bson:"overlayContent" json:"overlayContent"`
	IsActive    bool           `bson:"isActive" json:"isActive"`
}

func (a *About) SortKey() (bool, int) { return false, 0 }

func (a *About) Field(name string) (interface{}, bool) {
	if name == "isActive" {
		return a.IsActive, true
	}
	return nil, false
}

// Program categories shared by Training and Testimonial.
var ProgramCategories = []string{
	"weight-loss", "muscle-building", "functional-fitness",
	"hiit-training", "yoga", "athletic-performance",
}

var Difficulties = []string{"beginner", "intermediate", "advanced"}

// Training is one offered program.
type Training struct {
	DocMeta     `bson:",inline"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Image       Media    `bson:"image" json:"image"`
	Features    []string `bson:"features,omitempty" json:"features,omitempty"`
	Category    string   `bson:"category" json:"category"`
	Duration    string   `bson:"duration,omitempty" json:"duration,omitempty"`
	Difficulty  string   `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Price       float64  `bson:"price,omitempty" json:"price,omitempty"`
	IsActive    bool     `bson:"isActive" json:"isActive"`
	Order       int      `bson:"order" json:"order"`
}

func (t *Training) SortKey() (bool, int) { return false, t.Order }

func (t *Training) Field(name string) (interface{}, bool) {
	switch name {
	case "category":
		return t.Category, true
	case "difficulty":
		return t.Difficulty, true
	case "isActive":
		return t.IsActive, true
	}
	return nil, false
}

// SocialLinks holds a trainer's profiles.
type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
}

var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Availability is one weekly slot a trainer can be booked.
type Availability struct {
	Day       string `bson:"day" json:"day"`
	StartTime string `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   string `bson:"endTime,omitempty" json:"endTime,omitempty"`
}

// Trainer is a staff profile.
type Trainer struct {
	DocMeta        `bson:",inline"`
	Name           string         `bson:"name" json:"name"`
	Specialty      string         `bson:"specialty" json:"specialty"`
	Experience     string         `bson:"experience" json:"experience"`
	Bio            string         `bson:"bio" json:"bio"`
	Image          Media          `bson:"image" json:"image"`
	Certifications []string       `bson:"certifications" json:"certifications"`
	SocialLinks    SocialLinks    `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Email          string         `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Availability   []Availability `bson:"availability,omitempty" json:"availability,omitempty"`
	Rating         float64        `bson:"rating" json:"rating"`
	IsActive       bool           `bson:"isActive" json:"isActive"`
	Order          int            `bson:"order" json:"order"`
}

func (t *Trainer) SortKey() (bool, int) { return false, t.Order }

func (t *Trainer) Field(name string) (interface{}, bool) {
	switch name {
	case "specialty":
		return t.Specialty, true
	case "isActive":
		return t.IsActive, true
	}
	return nil, false
}

var (
	GalleryTypes      = []string{"image", "video"}
	GalleryCategories = []string{"equipment", "training", "facility", "classes", "events"}
)

// Gallery is one image or video item. Views is bumped by every single-item read.
type Gallery struct {
	DocMeta     `bson:",inline"`
	Title       string   `bson:"title" json:"title"`
	Type        string   `bson:"type" json:"type"`
	Category    string   `bson:"category" json:"category"`
	Media       Media    `bson:"media" json:"media"`
	Thumbnail   Media    `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`
	IsActive    bool     `bson:"isActive" json:"isActive"`
	IsFeatured  bool     `bson:"isFeatured" json:"isFeatured"`
	Order       int      `bson:"order" json:"order"`
	Views       int      `bson:"views" json:"views"`
}

func (g *Gallery) SortKey() (bool, int) { return g.IsFeatured, g.Order }

func (g *Gallery) Field(name string) (interface{}, bool) {
	switch name {
	case "category":
		return g.Category, true
	case "type":
		return g.Type, true
	case "isFeatured":
		return g.IsFeatured, true
	case "isActive":
		return g.IsActive, true
	}
	return nil, false
}

// Testimonial is a member success story with optional before/after shots.
type Testimonial struct {
	DocMeta     `bson:",inline"`
	Name        string `bson:"name" json:"name"`
	Role        string `bson:"role" json:"role"`
	Text        string `bson:"text" json:"text"`
	Rating      int    `bson:"rating" json:"rating"`
	Image       Media  `bson:"image" json:"image"`
	Result      string `bson:"result" json:"result"`
	Program     string `bson:"program" json:"program"`
	BeforeImage Media  `bson:"beforeImage,omitempty" json:"beforeImage,omitempty"`
	AfterImage  Media  `bson:"afterImage,omitempty" json:"afterImage,omitempty"`
	Duration    string `bson:"duration,omitempty" json:"duration,omitempty"`
	IsActive    bool   `bson:"isActive" json:"isActive"`
	IsFeatured  bool   `bson:"isFeatured" json:"isFeatured"`
	Order       int    `bson:"order" json:"order"`
}

func (t *Testimonial) SortKey() (bool, int) { return t.IsFeatured, t.Order }

func (t *Testimonial) Field(name string) (interface{}, bool) {
	switch name {
	case "program":
		return t.Program, true
	case "rating":
		return t.Rating, true
	case "isFeatured":
		return t.IsFeatured, true
	case "isActive":
		return t.IsActive, true
	}
	return nil, false
}

var PricingPeriods = []string{"month", "year", "week", "day"}

// BenefitGroup is a categorized list of plan perks.
type BenefitGroup struct {
	Category string   `bson:"category,omitempty" json:"category,omitempty"`
	Items    []string `bson:"items,omitempty" json:"items,omitempty"`
}

// Pricing is one membership plan. At most one plan carries IsPopular at a time;
// setting it clears the flag on every sibling (best effort, not transactional).
type Pricing struct {
	DocMeta      `bson:",inline"`
	Name         string         `bson:"name" json:"name"`
	Price        float64        `bson:"price" json:"price"`
	Period       string         `bson:"period" json:"period"`
	Description  string         `bson:"description" json:"description"`
	Features     []string       `bson:"features" json:"features"`
	IsPopular    bool           `bson:"isPopular" json:"isPopular"`
	ButtonText   string         `bson:"buttonText" json:"buttonText"`
	Color        string         `bson:"color,omitempty" json:"color,omitempty"`
	MaxMembers   int            `bson:"maxMembers,omitempty" json:"maxMembers,omitempty"`
	TrialDays    int            `bson:"trialDays" json:"trialDays"`
	Benefits     []BenefitGroup `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Restrictions []string       `bson:"restrictions,omitempty" json:"restrictions,omitempty"`
	IsActive     bool           `bson:"isActive" json:"isActive"`
	Order        int            `bson:"order" json:"order"`
}

func (p *Pricing) SortKey() (bool, int) { return false, p.Order }

func (p *Pricing) Field(name string) (interface{}, bool) {
	switch name {
	case "isPopular":
		return p.IsPopular, true
	case "isActive":
		return p.IsActive, true
	}
	return nil, false
}

// ClearFlag supports the popularity-exclusivity bulk clear.
func (p *Pricing) ClearFlag(name string) {
	if name == "isPopular" {
		p.IsPopular = false
	}
}

// GymInfo is branding on the contact section.
type GymInfo struct {
	Name    string `bson:"name" json:"name"`
	Tagline string `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Logo    Media  `bson:"logo,omitempty" json:"logo,omitempty"`
}

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type ContactDetails struct {
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

type OpenClose struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

type Hours struct {
	Weekdays    OpenClose `bson:"weekdays" json:"weekdays"`
	Weekends    OpenClose `bson:"weekends" json:"weekends"`
	SpecialNote string    `bson:"specialNote,omitempty" json:"specialNote,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

type LocationInfo struct {
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
	MapEmbedURL string      `bson:"mapEmbedUrl,omitempty" json:"mapEmbedUrl,omitempty"`
}

type SocialMedia struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	TikTok    string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
}

var TransportationTypes = []string{"car", "metro", "bus", "bike", "walk"}

// Transportation is one way-to-reach-us entry.
type Transportation struct {
	Type        string `bson:"type,omitempty" json:"type,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Contact holds the studio's location and contact details. Singleton.
type Contact struct {
	DocMeta        `bson:",inline"`
	Gym            GymInfo          `bson:"gym" json:"gym"`
	Address        Address          `bson:"address" json:"address"`
	Details        ContactDetails   `bson:"contact" json:"contact"`
	Hours          Hours            `bson:"hours" json:"hours"`
	Location       LocationInfo     `bson:"location" json:"location"`
	SocialMedia    SocialMedia      `bson:"socialMedia,omitempty" json:"socialMedia,omitempty"`
	Amenities      []string         `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Transportation []Transportation `bson:"transportation,omitempty" json:"transportation,omitempty"`
	IsActive       bool             `bson:"isActive" json:"isActive"`
}

func (c *Contact) SortKey() (bool, int) { return false, 0 }

func (c *Contact) Field(name string) (interface{}, bool) {
	if name == "isActive" {
		return c.IsActive, true
	}
	return nil, false
}
