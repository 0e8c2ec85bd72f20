package cli

import (
	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/spf13/cobra"
)

// partyFlags are the traveler-count flags shared by quote and plan.
type partyFlags struct {
	adults   int
	children int
	ages     []int
	seniors  bool
}

func (p *partyFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.adults, "adults", 2, "Number of adults (12+)")
	cmd.Flags().IntVar(&p.children, "children", 0, "Number of children (defaults to the number of --ages)")
	cmd.Flags().IntSliceVar(&p.ages, "ages", nil, "Child ages, comma separated (under 2 travels as infant)")
	cmd.Flags().BoolVar(&p.seniors, "seniors", false, "Up to two of the adults are 60+")
}

// request builds the party, taking the child count from --ages when
// --children was not given.
func (p *partyFlags) request(cmd *cobra.Command) contract.PartyRequest {
	children := p.children
	if !cmd.Flags().Changed("children") {
		children = len(p.ages)
	}
	return contract.PartyRequest{
		Adults:     p.adults,
		Children:   children,
		ChildAges:  p.ages,
		HasSeniors: p.seniors,
	}
}
