package content

import "time"

// Settings is the site-wide configuration document. Exactly one live document
// is expected; reads materialize it with defaults when missing.
type Settings struct {
	DocMeta     `bson:",inline"`
	Site        SiteSettings     `bson:"site" json:"site"`
	Theme       ThemeSettings    `bson:"theme" json:"theme"`
	SEO         SEOSettings      `bson:"seo" json:"seo"`
	Email       EmailSettings    `bson:"email" json:"email"`
	Business    BusinessSettings `bson:"business" json:"business"`
	Features    FeatureFlags     `bson:"features" json:"features"`
	Maintenance MaintenanceMode  `bson:"maintenance" json:"maintenance"`
	IsActive    bool             `bson:"isActive" json:"isActive"`
}

type SiteSettings struct {
	Name        string   `bson:"name" json:"name"`
	Tagline     string   `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Keywords    []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	Logo        Media    `bson:"logo,omitempty" json:"logo,omitempty"`
	Favicon     Media    `bson:"favicon,omitempty" json:"favicon,omitempty"`
}

type ThemeSettings struct {
	PrimaryColor   string `bson:"primaryColor" json:"primaryColor"`
	SecondaryColor string `bson:"secondaryColor" json:"secondaryColor"`
	DarkColor      string `bson:"darkColor" json:"darkColor"`
	LightColor     string `bson:"lightColor" json:"lightColor"`
	FontPrimary    string `bson:"fontPrimary" json:"fontPrimary"`
	FontSecondary  string `bson:"fontSecondary" json:"fontSecondary"`
}

type SEOSettings struct {
	MetaTitle         string `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription   string `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	OGImage           Media  `bson:"ogImage,omitempty" json:"ogImage,omitempty"`
	GoogleAnalyticsID string `bson:"googleAnalyticsId,omitempty" json:"googleAnalyticsId,omitempty"`
	FacebookPixelID   string `bson:"facebookPixelId,omitempty" json:"facebookPixelId,omitempty"`
}

type EmailSettings struct {
	FromName     string `bson:"fromName,omitempty" json:"fromName,omitempty"`
	FromEmail    string `bson:"fromEmail,omitempty" json:"fromEmail,omitempty"`
	ReplyToEmail string `bson:"replyToEmail,omitempty" json:"replyToEmail,omitempty"`
	SMTPHost     string `bson:"smtpHost,omitempty" json:"smtpHost,omitempty"`
	SMTPPort     int    `bson:"smtpPort,omitempty" json:"smtpPort,omitempty"`
	SMTPUser     string `bson:"smtpUser,omitempty" json:"smtpUser,omitempty"`
	SMTPPassword string `bson:"smtpPassword,omitempty" json:"smtpPassword,omitempty"`
}

type Certification struct {
	Name       string     `bson:"name,omitempty" json:"name,omitempty"`
	Number     string     `bson:"number,omitempty" json:"number,omitempty"`
	ExpiryDate *time.Time `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
}

type BusinessSettings struct {
	Established       int             `bson:"established,omitempty" json:"established,omitempty"`
	LicenseNumber     string          `bson:"licenseNumber,omitempty" json:"licenseNumber,omitempty"`
	TaxID             string          `bson:"taxId,omitempty" json:"taxId,omitempty"`
	InsuranceProvider string          `bson:"insuranceProvider,omitempty" json:"insuranceProvider,omitempty"`
	Certifications    []Certification `bson:"certifications,omitempty" json:"certifications,omitempty"`
}

type FeatureFlags struct {
	OnlineBooking     bool `bson:"onlineBooking" json:"onlineBooking"`
	MembershipSignup  bool `bson:"membershipSignup" json:"membershipSignup"`
	ClassScheduling   bool `bson:"classScheduling" json:"classScheduling"`
	PaymentProcessing bool `bson:"paymentProcessing" json:"paymentProcessing"`
	LiveChat          bool `bson:"liveChat" json:"liveChat"`
	Newsletter        bool `bson:"newsletter" json:"newsletter"`
}

type MaintenanceMode struct {
	Enabled             bool       `bson:"enabled" json:"enabled"`
	Message             string     `bson:"message,omitempty" json:"message,omitempty"`
	EstimatedCompletion *time.Time `bson:"estimatedCompletion,omitempty" json:"estimatedCompletion,omitempty"`
}

func (s *Settings) SortKey() (bool, int) { return false, 0 }

func (s *Settings) Field(name string) (interface{}, bool) {
	if name == "isActive" {
		return s.IsActive, true
	}
	return nil, false
}

// DefaultSettings returns the schema defaults used when the singleton is
// materialized on first read.
func DefaultSettings() *Settings {
	return &Settings{
		Site: SiteSettings{
			Name:        "Wolverines Fitness Studio",
			Tagline:     "Transform your body, transform your life",
			Description: "Transform your body and mind at our premium fitness studio",
		},
		Theme: ThemeSettings{
			PrimaryColor:   "#EAA620",
			SecondaryColor: "#F3CE4D",
			DarkColor:      "#000000",
			LightColor:     "#FCF8F8",
			FontPrimary:    "Oswald",
			FontSecondary:  "Open Sans",
		},
		SEO: SEOSettings{
			MetaTitle:       "Fitness Studio - Transform Your Body",
			MetaDescription: "Transform your body and mind at our premium fitness studio",
		},
		Email: EmailSettings{
			FromName:     "Wolverines Fitness Studio",
			FromEmail:    "noreply@wolverinesfitness.com",
			ReplyToEmail: "info@wolverinesfitness.com",
		},
		Business: BusinessSettings{Established: 2019},
		Features: FeatureFlags{
			OnlineBooking:    true,
			MembershipSignup: true,
			ClassScheduling:  true,
			LiveChat:         true,
			Newsletter:       true,
		},
		Maintenance: MaintenanceMode{
			Message: "We are currently performing maintenance. Please check back soon!",
		},
		IsActive: true,
	}
}

// PublicSettings is the projection served to unauthenticated readers.
// Operational fields (SMTP credentials, analytics IDs, business records)
// are never part of it.
type PublicSettings struct {
	Site        SiteSettings    `json:"site"`
	Theme       ThemeSettings   `json:"theme"`
	SEO         PublicSEO       `json:"seo"`
	Features    FeatureFlags    `json:"features"`
	Maintenance MaintenanceMode `json:"maintenance"`
}

type PublicSEO struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	OGImage         Media  `json:"ogImage,omitempty"`
}

// PublicView strips the settings document down to its public projection.
func (s *Settings) PublicView() PublicSettings {
	return PublicSettings{
		Site:  s.Site,
		Theme: s.Theme,
		SEO: PublicSEO{
			MetaTitle:       s.SEO.MetaTitle,
			MetaDescription: s.SEO.MetaDescription,
			OGImage:         s.SEO.OGImage,
		},
		Features:    s.Features,
		Maintenance: s.Maintenance,
	}
}
