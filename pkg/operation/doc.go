/*
Package operation applies a cleanup job to files on disk.

	+-------------+
	|  Operator   |
	| Clean/Status|
	+------+------+
	       |
	+------+------+
	|  Transform  |
	| (pkg/text)  |
	+------+------+
	       |
	+------+------+
	|    Write    |
	| in place /  |
	|   atomic    |
	+-------------+

🎯 Purpose:
- Expands targets (plain paths or doublestar globs)
- Decodes each file with the job's encoding
- Applies the job's rules, then folds runs of blank lines
- Writes the result back, or previews it for Status

🔄 Flow:
1. ResolveTargets turns the configured targets into file paths
2. Each file is read, decoded and run through the replacer
3. Clean encodes and writes (optionally after a .bak copy, optionally atomically)
4. Once every file succeeded, the job's status lines go to the Reporter

⚡ Failure model:
- The first error aborts the run; no status lines are printed
- Without Atomic a crash mid-write can leave a partial file
- A rule that matches nothing is not an error
*/
package operation
