package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dantte-lp/fidofuzz/internal/fuzzcase"
)

// caseView is the YAML projection of a decoded corpus case. Blob fields
// are summarized by length; flag fields show only their meaningful low
// bit alongside the raw byte.
type caseView struct {
	RPID      string `yaml:"rp_id"`
	PINSet    bool   `yaml:"pin_set"`
	Type      uint8  `yaml:"type"`
	U2F       uint8  `yaml:"u2f"`
	UP        uint8  `yaml:"up"`
	UV        uint8  `yaml:"uv"`
	Ext       int32  `yaml:"ext"`
	Seed      int32  `yaml:"seed"`
	CredCount uint8  `yaml:"cred_count"`
	CDHLen    int    `yaml:"cdh_len"`
	CredLen   int    `yaml:"cred_len"`
	ES256Len  int    `yaml:"es256_len"`
	RS256Len  int    `yaml:"rs256_len"`
	EdDSALen  int    `yaml:"eddsa_len"`
	WireLen   int    `yaml:"wire_len"`
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <case-file>",
		Short: "Decode a corpus case and print it as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read case: %w", err)
			}

			rec, err := fuzzcase.Decode(data)
			if err != nil {
				return fmt.Errorf("decode case: %w", err)
			}

			view := caseView{
				RPID:      rec.RPID.String(),
				PINSet:    rec.PIN.Len() > 0,
				Type:      rec.Type,
				U2F:       rec.U2F,
				UP:        rec.UP,
				UV:        rec.UV,
				Ext:       rec.Ext,
				Seed:      rec.Seed,
				CredCount: rec.CredCount,
				CDHLen:    rec.CDH.Len(),
				CredLen:   rec.Cred.Len(),
				ES256Len:  rec.ES256.Len(),
				RS256Len:  rec.RS256.Len(),
				EdDSALen:  rec.EdDSA.Len(),
				WireLen:   rec.WireData.Len(),
			}

			out, err := yaml.Marshal(&view)
			if err != nil {
				return fmt.Errorf("marshal case view: %w", err)
			}

			fmt.Print(string(out))
			return nil
		},
	}
}
