package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/spf13/cobra"
)

func loginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check that the configured credentials can log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			out := map[string]any{"ok": true, "role": s.Role(), "subject": s.Subject()}
			return c.print(out, func() {
				fmt.Fprintf(c.w, "ok: logged in as %s (%s)\n", s.Subject(), s.Role())
			})
		},
	}
}

func clientsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "clients", Short: "Inspect and manage clients"}

	var status, email string
	list := &cobra.Command{
		Use:   "list",
		Short: "List clients with their current status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.ListClients(cmd.Context(), status, email)
			if err != nil {
				return err
			}
			return c.print(res, func() { printClients(c.w, res.Clients...) })
		},
	}
	list.Flags().StringVar(&status, "status", "", "Filter: future|active|expiring_soon|expired")
	list.Flags().StringVar(&email, "email", "", "Filter by email substring")

	get := &cobra.Command{
		Use:   "get <client-id>",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.GetClient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(res, func() { printClients(c.w, *res) })
		},
	}

	revoke := &cobra.Command{
		Use:   "revoke <client-id>",
		Short: "End a client's access now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.RevokeClient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(res, func() { printClients(c.w, *res) })
		},
	}

	usage := &cobra.Command{
		Use:   "usage [client-id]",
		Short: "Show demos opened and logins per client",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				one, err := s.ClientUsageFor(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(one, func() { printUsage(c.w, *one) })
			}
			res, err := s.ClientUsage(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(res, func() { printUsage(c.w, res.Clients...) })
		},
	}

	cmd.AddCommand(list, get, revoke, usage)
	return cmd
}

func requestsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "requests", Short: "Review renewal requests"}

	var state string
	list := &cobra.Command{
		Use:   "list",
		Short: "List requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.ListRequests(cmd.Context(), state)
			if err != nil {
				return err
			}
			return c.print(res, func() { printRequests(c.w, res.Requests...) })
		},
	}
	list.Flags().StringVar(&state, "state", "", "Filter: pending|approved|rejected")

	pending := &cobra.Command{
		Use:   "pending",
		Short: "Show the review queue, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.PendingRequests(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(res, func() {
				tw := tabwriter.NewWriter(c.w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTYPE\tCLIENT\tEMAIL\tEXPIRES\tOPENED")
				for _, r := range res.Requests {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
						r.ID, r.Type, r.ClientName, r.ClientEmail,
						r.CurrentExpiration.Format(time.DateOnly), r.CreatedAt.Format(time.RFC3339))
				}
				_ = tw.Flush()
			})
		},
	}

	counts := &cobra.Command{
		Use:   "counts",
		Short: "Count requests by state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.RequestCounts(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(res, func() {
				fmt.Fprintf(c.w, "pending=%d approved=%d rejected=%d total=%d\n",
					res.Pending, res.Approved, res.Rejected, res.Total)
			})
		},
	}

	var newExpiration string
	approve := &cobra.Command{
		Use:   "approve <request-id>",
		Short: "Approve a pending request",
		Long: "Approve a pending request. Renewals extend the expiration by 30 days " +
			"unless --expires is given; revocations end access immediately.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.ApproveRequest(cmd.Context(), args[0], newExpiration)
			if err != nil {
				return err
			}
			return c.print(res, func() { printDecision(c.w, res) })
		},
	}
	approve.Flags().StringVar(&newExpiration, "expires", "", "Explicit new expiration (YYYY-MM-DD or RFC 3339)")

	reject := &cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.RejectRequest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(res, func() { printDecision(c.w, res) })
		},
	}

	cmd.AddCommand(list, pending, counts, approve, reject)
	return cmd
}

func printClients(w io.Writer, clients ...catalogsdk.ClientInfo) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSTATUS\tDAYS\tEXPIRES")
	for _, cl := range clients {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			cl.ID, cl.Name, cl.Email, cl.Status, cl.DaysRemaining, cl.ExpirationDate.Format(time.DateOnly))
	}
	_ = tw.Flush()
}

func printUsage(w io.Writer, rows ...catalogsdk.ClientUsageInfo) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLIENT\tEMAIL\tDEMOS\tOPENS\tLOGINS\tLAST ACTIVITY")
	for _, u := range rows {
		last := "-"
		if u.LastActivity != nil {
			last = u.LastActivity.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			u.ClientID, u.Email, u.DemosOpened, u.TotalOpens, u.TotalLogins, last)
	}
	_ = tw.Flush()
}

func printRequests(w io.Writer, reqs ...catalogsdk.RequestInfo) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENT\tTYPE\tSTATE\tOPENED\tDECIDED BY")
	for _, r := range reqs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.ClientID, r.Type, r.State, r.CreatedAt.Format(time.RFC3339), r.DecidedBy)
	}
	_ = tw.Flush()
}

func printDecision(w io.Writer, d *catalogsdk.DecisionResponse) {
	fmt.Fprintf(w, "request %s %s\n", d.Request.ID, d.Request.State)
	if d.Client != nil {
		fmt.Fprintf(w, "client %s is now %s, expires %s (%d days)\n",
			d.Client.Email, d.Client.Status, d.Client.ExpirationDate.Format(time.DateOnly), d.Client.DaysRemaining)
	}
}
