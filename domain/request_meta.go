package domain

// RequestMeta carries the request attributes we keep alongside audit-relevant
// writes. Explicit fields instead of an open map so the contract stays
// statically checkable.
type RequestMeta struct {
	IpAddress string `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
}
