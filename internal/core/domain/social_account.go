package domain

import "time"

// SocialAccount is an external social-media identity posts are published to.
// Tokens are written only through updates and are never serialized.
type SocialAccount struct {
	ID           int64     `json:"id"`
	Platform     string    `json:"platform"`
	Username     string    `json:"username"`
	IsConnected  bool      `json:"isConnected"`
	AccessToken  *string   `json:"-"`
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SocialAccountInput is the creation schema of a social account. It has no
// token fields.
type SocialAccountInput struct {
	Platform    string `json:"platform" validate:"required"`
	Username    string `json:"username" validate:"required"`
	IsConnected *bool  `json:"isConnected"`
}

func (in SocialAccountInput) NewSocialAccount(id int64, now time.Time) SocialAccount {
	sa := SocialAccount{
		ID:        id,
		Platform:  in.Platform,
		Username:  in.Username,
		CreatedAt: now,
	}
	if in.IsConnected != nil {
		sa.IsConnected = *in.IsConnected
	}
	return sa
}

// SocialAccountPatch lists the mutable fields of a social account, including
// the tokens.
type SocialAccountPatch struct {
	Platform     *string          `json:"platform" validate:"omitempty,min=1"`
	Username     *string          `json:"username" validate:"omitempty,min=1"`
	IsConnected  *bool            `json:"isConnected"`
	AccessToken  Nullable[string] `json:"accessToken" validate:"-"`
	RefreshToken Nullable[string] `json:"refreshToken" validate:"-"`
}

func (p SocialAccountPatch) Apply(sa *SocialAccount) {
	setIf(&sa.Platform, p.Platform)
	setIf(&sa.Username, p.Username)
	setIf(&sa.IsConnected, p.IsConnected)
	if p.AccessToken.Set {
		sa.AccessToken = p.AccessToken.Ptr()
	}
	if p.RefreshToken.Set {
		sa.RefreshToken = p.RefreshToken.Ptr()
	}
}

// Empty reports whether the patch carries no field at all.
func (p SocialAccountPatch) Empty() bool {
	return p.Platform == nil && p.Username == nil && p.IsConnected == nil &&
		!p.AccessToken.Set && !p.RefreshToken.Set
}

// Clone returns a copy of sa that shares no memory with it.
func (sa SocialAccount) Clone() SocialAccount {
	sa.AccessToken = copyPtr(sa.AccessToken)
	sa.RefreshToken = copyPtr(sa.RefreshToken)
	return sa
}
