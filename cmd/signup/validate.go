package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/signup/internal/form"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validateFlags struct {
	file string
	step int
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate registration data from a YAML file",
	Long: `Validate registration data without the TUI.

The file uses the same field names as the submission payload, plus
acceptTermsAndCondition:

  email: a@b.com
  password: Ab12Ab12!!
  firstName: Jo
  address: 12 Main Street
  countryCode: "+91"
  phoneNumber: "9876543210"
  acceptTermsAndCondition: true

With --step only that step's fields are checked. Use "-" to read stdin.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "YAML file with form data")
	validateCmd.Flags().IntVarP(&validateFlags.step, "step", "s", 0, "Validate a single step (1-3); 0 validates all")
	_ = validateCmd.MarkFlagRequired("file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readFormData(cmd.InOrStdin(), validateFlags.file)
	if err != nil {
		return err
	}

	v := form.Default
	if validateFlags.step < 0 || validateFlags.step > v.Steps() {
		return fmt.Errorf("step must be within 0..%d, got %d", v.Steps(), validateFlags.step)
	}

	if validateFlags.step == 0 {
		err = v.ValidateAll(data)
	} else {
		err = v.ValidateStep(validateFlags.step, data)
	}

	out := cmd.OutOrStdout()
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			fmt.Fprintf(out, "%s: %s\n", fe.Field, fe.Message)
		}
		return verr
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "ok")
	return nil
}

func readFormData(stdin io.Reader, path string) (*form.Data, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading form data: %w", err)
	}

	var data form.Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing form data: %w", err)
	}
	return &data, nil
}
