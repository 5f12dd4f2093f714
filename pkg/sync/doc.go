/*
Package sync implements content-addressed directory sync.

A client declares the directory tree it wants the server to have, and the
server makes its root directory match:

 1. Structure. The client either declares every path (Reconcile) or sends
    the paths that were created and deleted since the last sync
    (ApplyChangeSet). Directories are created, and anything the client
    didn't declare is removed. Files are never created by this step.

 2. Contents. For each file, the client sends the strong digest of its copy
    (Check). If the server's copy matches, there's nothing to do. If another
    file on the server has the same contents, it's copied into place.
    Otherwise the server returns a weak and strong checksum for each of its
    blocks, and the client uploads only the blocks that differ
    (ApplyBlocks).

The server keeps a ChecksumIndex from path to digest so that the copy
shortcut doesn't have to hash every file. The index is only a hint: entries
are re-verified before they're used.
*/
package sync
