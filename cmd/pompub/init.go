package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a properties file interactively",
	Long: `Create a pompub.properties file by answering a few prompts.

You will be asked for:
  - Project name, description and URL
  - License
  - Sonatype credentials
  - GPG signing key settings

Blank answers leave the corresponding key out of the file, so the value
stays resolvable from other sources.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// licenseChoices maps the selection to the POM_LICENCE_* triple.
var licenseChoices = []struct {
	Label string
	Name  string
	URL   string
}{
	{"Apache-2.0", "The Apache Software License, Version 2.0", "https://www.apache.org/licenses/LICENSE-2.0.txt"},
	{"MIT", "MIT License", "https://opensource.org/licenses/MIT"},
	{"GPL-3.0", "GNU General Public License v3.0", "https://www.gnu.org/licenses/gpl-3.0.txt"},
	{"none", "", ""},
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("project-dir")
	path, _ := cmd.Flags().GetString("properties")
	if path == "" {
		path = filepath.Join(dir, "pompub.properties")
	}

	if _, err := os.Stat(path); err == nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite it", path),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	defaultName := ""
	if abs, err := filepath.Abs(dir); err == nil {
		defaultName = filepath.Base(abs)
	}

	name, err := promptString("Project name", defaultName, nil)
	if err != nil {
		return handlePromptError(err)
	}
	description, err := promptString("Description", "", nil)
	if err != nil {
		return handlePromptError(err)
	}
	projectURL, err := promptString("Project URL", "", validateHTTPURL)
	if err != nil {
		return handlePromptError(err)
	}

	licenseSelect := promptui.Select{
		Label: "License",
		Items: licenseLabels(),
	}
	licenseIdx, _, err := licenseSelect.Run()
	if err != nil {
		return handlePromptError(err)
	}
	license := licenseChoices[licenseIdx]

	username, err := promptString("Sonatype username", "", nil)
	if err != nil {
		return handlePromptError(err)
	}
	password, err := promptSecret("Sonatype password")
	if err != nil {
		return handlePromptError(err)
	}

	keyID, err := promptString("Signing key ID", "", nil)
	if err != nil {
		return handlePromptError(err)
	}
	var keyPassword, keyRing string
	if keyID != "" {
		keyPassword, err = promptSecret("Signing key password")
		if err != nil {
			return handlePromptError(err)
		}
		keyRing, err = promptString("Secret keyring file", "", nil)
		if err != nil {
			return handlePromptError(err)
		}
	}

	entries := [][2]string{
		{"POM_NAME", name},
		{"POM_DESCRIPTION", description},
		{"POM_URL", projectURL},
		{"POM_LICENCE_NAME", license.Name},
		{"POM_LICENCE_URL", license.URL},
		{"SONATYPE_USERNAME", username},
		{"SONATYPE_PASSWORD", password},
		{"signing.keyId", keyID},
		{"signing.password", keyPassword},
		{"signing.secretKeyRingFile", keyRing},
	}
	if license.Name != "" {
		entries = append(entries, [2]string{"POM_LICENCE_DIST", "repo"})
	}

	var b strings.Builder
	for _, e := range entries {
		if e[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", e[0], e[1])
	}

	// The file may hold credentials; keep it owner-only.
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write properties file: %w", err)
	}

	fmt.Printf("Wrote %s.\n", path)
	fmt.Println("Run 'pompub resolve' to see the resolved configuration.")
	return nil
}

func promptString(label, defaultValue string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  defaultValue,
		Validate: validate,
	}
	v, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func promptSecret(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}
	v, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func validateHTTPURL(input string) error {
	if input == "" {
		return nil
	}
	parsed, err := url.Parse(input)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}
	return nil
}

func licenseLabels() []string {
	labels := make([]string, len(licenseChoices))
	for i, c := range licenseChoices {
		labels[i] = c.Label
	}
	return labels
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
