package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jahidblackrose/mtb-loan-approver/internal/signer"
)

// operationEndpoints maps the operation names accepted on the command line
// to the signed endpoint suffixes.
var operationEndpoints = map[string]string{
	"fetch":    signer.EndpointFetchAllData,
	"generate": signer.EndpointGenerateOTP,
	"resend":   signer.EndpointResendOTP,
	"validate": signer.EndpointValidateOTP,
}

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <reference> <operation>",
		Short: "Print the API code for a reference and operation",
		Long: `Print the request signature the loan service expects for an
application reference and operation. Useful when exercising the backend
with curl or inspecting a failing integration.

Operations: fetch, generate, resend, validate

Example:
  approver sign 2025000004 validate`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, ok := operationEndpoints[args[1]]
			if !ok {
				return fmt.Errorf("unknown operation %q: expected fetch, generate, resend or validate", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), signer.Sign(args[0], endpoint))
			return nil
		},
	}
}
