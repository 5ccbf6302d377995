/*
Package status manages file storage and per-file status for tgfix.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Notices |
	| (Storage) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads TextGrid files and writes them back atomically
- Writes, restores and removes `.bak` backups
- Guards each rewrite with an advisory file lock
- Formats the per-file console notices

💾 Backups:
A backup is a byte-for-byte copy of the file as it was read, written just
before the first rewrite. BackupPolicy decides what happens when one exists:

	keep       leave the existing backup alone (the oldest original survives)
	overwrite  replace it with the content read in this run
	none       never write a backup

🔍 Example:

	mgr := status.New(dir, zerolog.Ctx(ctx))
	unlock, err := mgr.Lock(ctx, "a.TextGrid")
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := mgr.BackupContent(ctx, "a.TextGrid", raw, status.BackupKeep); err != nil {
		return err
	}
	return mgr.WriteFileAtomic(ctx, "a.TextGrid", out)
*/
package status
