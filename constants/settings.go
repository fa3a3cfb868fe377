package constants

// Fallback copy for every site_settings field. Pages never see an empty
// field: the resolver overlays the stored row on top of these.
const (
	DEFAULT_WEBSITE_NAME     = "Wanderline Travels"
	DEFAULT_ADDRESS          = "21A Central Road Jadavpur Kolkata 700032"
	DEFAULT_PHONE            = "6291164753, 8777679266"
	DEFAULT_EMAIL            = "hello@wanderline.example"
	DEFAULT_ABOUT_TITLE      = "Crafting Journeys Since Day One"
	DEFAULT_ABOUT_BODY       = "We are a full-service travel agency dedicated to building memorable trips at honest prices."
	DEFAULT_HERO_HEADLINE    = "Explore The World With Us"
	DEFAULT_HERO_SUBHEADLINE = "Handcrafted itineraries, trusted local partners and prices that make sense."
	DEFAULT_HERO_BADGE       = "Discover Your Next Adventure"
	DEFAULT_TOURS_HEADING    = "Popular Destinations"
	DEFAULT_TOURS_SUBHEADING = "Handpicked tours for your next adventure"
	DEFAULT_FEATURE_1        = "Curated Trips"
	DEFAULT_FEATURE_2        = "Local Guides"
	DEFAULT_FEATURE_3        = "Premium Travel"
)
