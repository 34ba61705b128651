package constvars

const (
	RegexTenantSlug   = `^[a-z0-9\-_.]{1,120}$`
	RegexTimeHHMM     = `^([01]\d|2[0-3]):[0-5]\d$|^24:00$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexCurrency     = `^[a-z]{3}$`
)
