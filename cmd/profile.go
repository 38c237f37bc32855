package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/prasetyo/belanja"
	"github.com/prasetyo/belanja/i18n"
)

type profileCmd struct {
	name        string
	jobTitle    string
	institution string
	idNumber    string
	address     string
	photo       string
	removePhoto bool
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or edit the user profile" }
func (*profileCmd) Usage() string {
	return `blj profile [-name <name>] [-job <title>] [-institution <name>] [-id <number>] [-address <addr>] [-photo <file> | -remove-photo]

  Without flags, shows the current profile. With flags, updates the
  given fields and saves the whole profile. The photo file is embedded
  into the data store, so the original file is not needed afterwards.
`
}

func (p *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Display name.")
	f.StringVar(&p.jobTitle, "job", "", "Job title.")
	f.StringVar(&p.institution, "institution", "", "Institution name.")
	f.StringVar(&p.idNumber, "id", "", "ID number.")
	f.StringVar(&p.address, "address", "", "Address.")
	f.StringVar(&p.photo, "photo", "", "Image file to embed as the profile photo.")
	f.BoolVar(&p.removePhoto, "remove-photo", false, "Remove the profile photo.")
}

func (p *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kv, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer kv.Close()
	prefs := belanja.LoadPreferences(kv)
	profile := belanja.LoadProfile(kv, prefs.Language)

	edited := false
	f.Visit(func(fl *flag.Flag) {
		edited = true
		switch fl.Name {
		case "name":
			profile.Name = p.name
		case "job":
			profile.JobTitle = p.jobTitle
		case "institution":
			profile.InstitutionName = p.institution
		case "id":
			profile.IDNumber = p.idNumber
		case "address":
			profile.Address = p.address
		}
	})

	if p.photo != "" && p.removePhoto {
		fmt.Fprintln(os.Stderr, "Error: -photo and -remove-photo cannot be used together.")
		return subcommands.ExitUsageError
	}
	if p.photo != "" {
		if err := profile.AttachPhoto(p.photo); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if p.removePhoto {
		profile.RemovePhoto()
	}

	if !edited {
		p.show(profile, prefs)
		return subcommands.ExitSuccess
	}

	if err := belanja.SaveProfile(kv, profile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (p *profileCmd) show(profile belanja.Profile, prefs belanja.Preferences) {
	t := func(k i18n.Key) string { return i18n.T(k, prefs.Language) }
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t(i18n.EditProfile))
	fmt.Fprintf(&b, "%s: %s  \n", t(i18n.LabelName), profile.Name)
	fmt.Fprintf(&b, "%s: %s  \n", t(i18n.LabelJobTitle), profile.JobTitle)
	fmt.Fprintf(&b, "%s: %s  \n", t(i18n.LabelInstitution), profile.InstitutionName)
	if profile.IDNumber != "" {
		fmt.Fprintf(&b, "%s: %s  \n", t(i18n.LabelIDNumber), profile.IDNumber)
	}
	if profile.Address != "" {
		fmt.Fprintf(&b, "%s: %s  \n", t(i18n.LabelAddress), profile.Address)
	}
	if _, ok := profile.Photo(); ok {
		b.WriteString("\n(photo set)\n")
	}
	printMarkdown(b.String(), prefs.DarkMode)
}
