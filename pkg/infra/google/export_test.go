package google

import "github.com/leetvault/leetvault/pkg/domain/model"

func (x *Provider) IdentityFromIDToken(raw string) (*model.Identity, error) {
	return x.identityFromIDToken(raw)
}
