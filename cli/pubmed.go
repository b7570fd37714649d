package cli

import (
	"github.com/spf13/cobra"

	"github.com/nodeadmin/geneweaver-core/publication"
	"github.com/nodeadmin/geneweaver-core/schema"
)

func pubmedCmd(a *app) *cobra.Command {
	var format string
	var raw bool

	c := &cobra.Command{
		Use:   "pubmed ID...",
		Short: "Fetch publication metadata from PubMed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := publication.NewClient(a.cfg.ServiceURLs.PubmedXMLSvcURL, a.cfg.HTTPTimeout, a.log)

			if raw {
				for _, id := range args {
					body, err := client.FetchXML(cmd.Context(), id)
					if err != nil {
						return err
					}
					if _, err := cmd.OutOrStdout().Write(body); err != nil {
						return err
					}
				}
				return nil
			}

			pubs := make([]schema.PublicationInfo, 0, len(args))
			for _, id := range args {
				info, err := client.GetPublication(cmd.Context(), id)
				if err != nil {
					return err
				}
				a.log.Info("pubmed.fetched", "pubmed_id", info.PubmedID, "title", info.Title)
				pubs = append(pubs, info)
			}
			if len(pubs) == 1 {
				return writeOutput(cmd.OutOrStdout(), pubs[0], format)
			}
			return writeOutput(cmd.OutOrStdout(), pubs, format)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "pretty", "Output format: json|pretty|yaml")
	c.Flags().BoolVar(&raw, "raw", false, "Print the efetch XML instead of parsed fields")
	return c
}
