package constants

const (
	ERROR_INPUT              = "Invalid input data"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_LOADING            = "Error loading content. Please try again later."
	ERROR_STORE_UNAVAILABLE  = "Data store is not configured"
	ERROR_NOT_FOUND          = "Not found"
	DATA_INPUT_IS_NOT_NUMBER = "Input is not a number"
	MISSING_LOGIN_INPUT      = "Email and password are required"
	INVALID_CREDENTIALS      = "Invalid email or password"
	NOT_AUTHORIZED           = "This account is not authorized for admin access"
)

const (
	CATEGORY_INTERNATIONAL = "International"
	CATEGORY_DOMESTIC      = "Domestic"
)

const (
	SORT_LATEST     = "latest"
	SORT_PRICE_ASC  = "price_asc"
	SORT_PRICE_DESC = "price_desc"
)

const (
	REVIEW_SOURCE_GOOGLE   = "google"
	REVIEW_SOURCE_WEBSITE  = "website"
	REVIEW_SOURCE_FACEBOOK = "facebook"
)

const PAYMENT_STATUS_PENDING = "pending"

// SiteSettingsID is the fixed id of the singleton settings row.
const SiteSettingsID = 1

const (
	LOGIN_PATH              = "/admin/login"
	LOGIN_UNAUTHORIZED_PATH = "/admin/login?error=unauthorized"
)
