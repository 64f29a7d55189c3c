/*
Package operation implements the tmplrc commands on top of the store, the
scanner, the resolver and the substitution engine.

🔄 Load flow:

 1. Choose a template (or take the one named)
 2. Ask for the project name, resolved against the host's working directory
 3. Confirm overwrite if the project folder exists; declining changes nothing
 4. Copy the template, scan it, ask for each token's value
 5. Rewrite contents, then file names, then folder names deepest-first
 6. Move the host into the new project

⚡ Outcomes: every command ends in exactly one notification, sent by Runner.

  - success: the operation's message
  - cancelled prompt or declined overwrite: neutral info
  - failure after the copy step: a warning that the template was loaded but
    may be partially substituted (nothing is rolled back)
  - anything else: an error

A cancelled token prompt removes the freshly copied project, so an
abandoned load leaves nothing behind.

🔍 Example:

	opts := operation.Options{Host: term, Store: st, Logger: logger}
	runner := operation.NewRunner(term)
	err := runner.Run(ctx, operation.NewLoadOperation(opts, operation.LoadArgs{Template: "proj"}))
*/
package operation
