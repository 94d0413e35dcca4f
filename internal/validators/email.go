package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// IsEmailDomainValid aceita o email quando o domínio tem MX ou, na falta,
// algum registro A/AAAA.
func IsEmailDomainValid(email string) bool {
	return emailDomainResolves(net.DefaultResolver, email)
}

type domainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

func emailDomainResolves(r domainResolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	hosts, err := r.LookupHost(ctx, domain)
	return err == nil && len(hosts) > 0
}
