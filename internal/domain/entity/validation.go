package entity

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// maxURLLength bounds source URLs handed to the fetcher or feed importer.
const maxURLLength = 2048

// RequiredArticleFields is the canonical order in which missing fields are reported.
var RequiredArticleFields = []string{"slug", "title", "excerpt", "content", "category", "image", "author"}

// ValidateNewArticle checks that every required field of a new article is present.
// Missing fields are reported together, in RequiredArticleFields order.
func ValidateNewArticle(a *Article) error {
	errs := validation.Errors{
		"slug":     validation.Validate(strings.TrimSpace(a.Slug), validation.Required),
		"title":    validation.Validate(strings.TrimSpace(a.Title), validation.Required),
		"excerpt":  validation.Validate(strings.TrimSpace(a.Excerpt), validation.Required),
		"content":  validation.Validate(strings.TrimSpace(a.Content), validation.Required),
		"category": validation.Validate(string(a.Category), validation.Required),
		"image":    validation.Validate(strings.TrimSpace(a.Image), validation.Required),
		"author":   validation.Validate(strings.TrimSpace(a.Author.Name), validation.Required),
	}.Filter()
	if errs == nil {
		return nil
	}

	fieldErrs, _ := errs.(validation.Errors)
	missing := make([]string, 0, len(fieldErrs))
	for _, f := range RequiredArticleFields {
		if _, ok := fieldErrs[f]; ok {
			missing = append(missing, f)
		}
	}
	return &MissingFieldsError{Fields: missing}
}

// ValidateSourceURL validates a URL that the server is about to fetch on behalf of a user.
// Only http and https are accepted, and hosts resolving to loopback, link-local or
// private addresses are rejected.
func ValidateSourceURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url", Message: "URL is malformed"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}
	host := u.Hostname()
	if host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	// IPリテラルは名前解決せずに判定する
	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else if strings.EqualFold(host, "localhost") {
		return &ValidationError{Field: "url", Message: "url cannot point to private network"}
	} else if resolved, err := net.LookupIP(host); err == nil {
		ips = resolved
	}
	for _, ip := range ips {
		if isRestrictedIP(ip) {
			return &ValidationError{Field: "url", Message: "url cannot point to private network"}
		}
	}
	return nil
}

func isRestrictedIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
