/*
Package atnt maps identifiers of the AT&T (ORL) face database onto the
on-disk naming convention of its samples.

The database has a fixed set of 40 subjects (clients), each of them having
10 samples (files). A file is addressed either by the pair of its client id
and the per-client file id, by its global id or by its relative path:

	client_id       [1, 40]
	client_file_id  [1, 10]
	id              (client_id-1)*10 + client_file_id, [1, 400]
	path            s<client_id>/<client_file_id>

For example, the 5th sample of the 3rd subject has id 25 and lives in
s3/5. Paths carry no extension: it is appended by the caller and selects
the serialization codec of the blob stored there, see [File.Save].
*/
package atnt
