/*
Package blobstore implements a storage of data blobs attached to the files
of the AT&T database.

Every blob is stored in a separate file under the root directory following
the layout of the database itself: a directory per client and a file per
sample, with an extension selecting the codec (see package codec). For
example, with root /var/lib/atnt and extension .zst the layout is

	/var/lib/atnt/
	├── s1
	│   ├── 1.zst
	│   ├── ...
	│   └── 10.zst
	├── ...
	└── s40
	    └── 10.zst

so the blob of any file can be found by its id without additional indexes,
and every stored path can be mapped back to the file, see [Store.Iterate].
*/
package blobstore
