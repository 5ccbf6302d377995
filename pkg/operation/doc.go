/*
Package operation runs batch edits over TextGrid files.

	+-------------+
	|  Provider   |
	|  (Listing)  |
	+------+------+
	       |
	+------+------+
	|  Operation  |
	| (Pipeline)  |
	+------+------+
	       |
	+------+------+
	|   Status    |
	|  (Storage)  |
	+-------------+

🎯 Purpose:
- Walks the files listed by a provider, one at a time
- Runs a text pipeline over each file and writes back only real changes
- Puts backups back in place or removes them
- Gathers the totals printed at the end of a run

🔄 Edit flow for one file:
1. Lock the file
2. Read and decode it (UTF-8 or UTF-16)
3. Run the pipeline over the decoded content
4. If a field changed: encode, back up the bytes read, write atomically

A failing file is reported with its error and counted as failed. The batch
carries on with the next file. Cancelling the context stops the run between
two files.

🔍 Example:

	op, err := operation.NewEditOperation(opts, "case conversion", text.NewPipeline(caser))
	if err != nil {
		return err
	}
	return operation.NewRunner(zerolog.Ctx(ctx), os.Stdout).Run(ctx, op)
*/
package operation
