// Copyright (c) 2026 Folio. All rights reserved.

package staff

import (
	"github.com/folioworks/folio/internal/core/flag"
	"github.com/folioworks/folio/pkg/slice"
)

// View is a member reduced to one locale, as served with ?lang=.
type View struct {
	ID            string              `json:"id"`
	Endpoint      string              `json:"endpoint"`
	Locale        string              `json:"locale"`
	Name          string              `json:"name"`
	Nickname      string              `json:"nickname"`
	Nicknames     []string            `json:"nicknames"`
	Age           int                 `json:"age"`
	Country       string              `json:"country"`
	CountryFlag   string              `json:"countryFlag"`
	Languages     []string            `json:"languages"`
	LanguageFlags []flag.LanguageFlag `json:"languageFlags"`
	Post          string              `json:"post"`
	Description   string              `json:"description"`
	Contacts      Contacts            `json:"contacts"`
	Projects      []string            `json:"projects"`
}

// Localize resolves every localized field of member for the requested locale.
func Localize(member *Member, requested string, flags *flag.Table) View {
	if flags == nil {
		flags = flag.Default()
	}

	return View{
		ID:            string(member.ID),
		Endpoint:      member.Endpoint,
		Locale:        requested,
		Name:          member.Name.Resolve(requested),
		Nickname:      member.PrimaryNickname(),
		Nicknames:     slice.OrEmpty(member.Nicknames),
		Age:           member.Age,
		Country:       member.Country,
		CountryFlag:   flags.Country(member.Country),
		Languages:     slice.OrEmpty(member.Languages),
		LanguageFlags: flags.LanguageFlags(member.Languages),
		Post:          member.Post,
		Description:   member.Description.Resolve(requested),
		Contacts:      member.Contacts,
		Projects:      slice.OrEmpty(member.Projects),
	}
}
