package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stratkb/internal/core/services"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Standardize and validate raw records",
	Long: `Utilities for preparing raw records before import: field
standardization, validation against required fields and types, and
duplicate detection.`,
}

var dataRules []string

var dataStandardizeCmd = &cobra.Command{
	Use:   "standardize [file.json]",
	Short: "Apply standardization rules to a record",
	Long: `Reads a JSON object from the file and applies the given rules.

Each --rule is field=action where action is one of: trim, lowercase,
uppercase, normalize. The standardized record is printed as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runDataStandardize,
}

var (
	dataRequired []string
	dataTypes    []string
)

var dataValidateCmd = &cobra.Command{
	Use:   "validate [file.json]",
	Short: "Validate a record's required fields and types",
	Long: `Reads a JSON object from the file and checks it against the given
required fields (--required) and field types (--type field=string|number|
boolean|array|object).`,
	Args: cobra.ExactArgs(1),
	RunE: runDataValidate,
}

var dataKeys []string

var dataDedupeCmd = &cobra.Command{
	Use:   "dedupe [file.json]",
	Short: "Detect duplicate records",
	Long: `Reads a JSON array of objects from the file and groups records
sharing the same values for the key fields (--key, repeatable).`,
	Args: cobra.ExactArgs(1),
	RunE: runDataDedupe,
}

func init() {
	dataStandardizeCmd.Flags().StringArrayVarP(&dataRules, "rule", "r", nil, "rule as field=action (repeatable)")
	dataValidateCmd.Flags().StringArrayVar(&dataRequired, "required", nil, "required field name (repeatable)")
	dataValidateCmd.Flags().StringArrayVar(&dataTypes, "type", nil, "field type as field=category (repeatable)")
	dataDedupeCmd.Flags().StringArrayVarP(&dataKeys, "key", "k", nil, "key field name (repeatable)")

	dataCmd.AddCommand(dataStandardizeCmd)
	dataCmd.AddCommand(dataValidateCmd)
	dataCmd.AddCommand(dataDedupeCmd)
	rootCmd.AddCommand(dataCmd)
}

func runDataStandardize(cmd *cobra.Command, args []string) error {
	record, err := readRecord(args[0])
	if err != nil {
		return err
	}

	rules := make([]services.StandardizationRule, 0, len(dataRules))
	for _, pair := range dataRules {
		field, action, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("rule %q: expected field=action", pair)
		}
		rules = append(rules, services.StandardizationRule{
			Field:  field,
			Action: services.StandardizationAction(action),
		})
	}

	standardized := services.Standardize(record, rules)

	data, err := json.MarshalIndent(standardized, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runDataValidate(cmd *cobra.Command, args []string) error {
	record, err := readRecord(args[0])
	if err != nil {
		return err
	}

	fieldTypes := make(map[string]string, len(dataTypes))
	for _, pair := range dataTypes {
		field, category, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("type %q: expected field=category", pair)
		}
		fieldTypes[field] = category
	}

	result := services.ValidateData(record, dataRequired, fieldTypes)

	if result.IsValid {
		cmd.Println("Record is valid.")
		return nil
	}

	cmd.Printf("Record is invalid (%d errors):\n", len(result.Errors))
	for _, issue := range result.Errors {
		cmd.Printf("  [%s] %s: %s\n", issue.Code, issue.Field, issue.Message)
	}
	return nil
}

func runDataDedupe(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	report := services.DetectDuplicates(records, dataKeys)

	if len(report.Duplicates) == 0 {
		cmd.Printf("No duplicates found in %d records.\n", len(records))
		return nil
	}

	cmd.Printf("Found %d duplicate groups:\n\n", len(report.Duplicates))
	for _, group := range report.Duplicates {
		cmd.Printf("  %s (%d records)\n", group.Key, len(group.Records))
	}
	cmd.Printf("\nUnique records: %d of %d\n", len(report.Unique), len(records))
	return nil
}

// readRecord loads one JSON object from a file.
func readRecord(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return record, nil
}
