/*
Package provider defines where tgfix finds the TextGrid files it edits.

	+-------------+        +-----------------+
	|  Provider   | -----> |  local.Provider |
	|  (source)   |        |  (directory)    |
	+-------------+        +-----------------+

🎯 Purpose:
- Lists candidate files relative to a root directory
- Keeps flat and recursive scans behind one interface

🔄 Flow:
1. Command resolves Args from flags and the config file
2. local.New validates the directory
3. ListFiles applies the pattern, the recursion setting and the ignore globs
4. Operations read and write through status.Manager using the same root

🔍 Example:

	p, err := local.New(provider.Args{Dir: dir, Pattern: "*.TextGrid", Recursive: true})
	if err != nil {
		return err
	}
	files, err := p.ListFiles(ctx)
*/
package provider
