package domain

import "io/fs"

const (
	// DirPerm is the permission mode for directories created by stores.
	DirPerm fs.FileMode = 0o750
	// FilePerm is the permission mode for files created by stores.
	FilePerm fs.FileMode = 0o644
)
