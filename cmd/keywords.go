package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	kwProduct  string
	kwCategory string
	kwOut      string
)

// keywordsCmd prints high-intent search queries for a product or category.
var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Generate high-intent Reddit search queries for lead-finding",
	RunE: func(cmd *cobra.Command, args []string) error {
		product := strings.TrimSpace(kwProduct)
		category := strings.TrimSpace(kwCategory)
		if category == "" {
			category = "your tool"
		}

		templates := []string{
			"{category} alternative",
			"alternative to {product}",
			"{product} alternative",
			"{product} vs",
			"recommend {category}",
			"best {category}",
			"looking for {category}",
			"need a {category}",
			"{category} for small business",
			"cheap {category}",
			"open source {category}",
		}

		var queries []string
		for _, t := range templates {
			if strings.Contains(t, "{product}") && product == "" {
				continue
			}
			q := strings.ReplaceAll(t, "{product}", product)
			q = strings.ReplaceAll(q, "{category}", category)
			queries = append(queries, strings.TrimSpace(q))
		}

		// de-dup while preserving order
		seen := map[string]bool{}
		deduped := make([]string, 0, len(queries))
		for _, q := range queries {
			k := strings.ToLower(q)
			if seen[k] {
				continue
			}
			seen[k] = true
			deduped = append(deduped, q)
		}

		text := strings.Join(deduped, "\n") + "\n"
		fmt.Print(text)

		if kwOut != "" {
			path, err := filepath.Abs(kwOut)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote: %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)

	keywordsCmd.Flags().StringVarP(&kwProduct, "product", "p", "", "competitor/product name, e.g. 'HubSpot'")
	keywordsCmd.Flags().StringVarP(&kwCategory, "category", "c", "", "category, e.g. 'crm', 'invoice software'")
	keywordsCmd.Flags().StringVar(&kwOut, "out", "", "optional output file path")
}
