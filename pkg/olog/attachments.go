package olog

import (
	"bytes"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/h2non/filetype"

	"github.com/sligara7/phoebus-golog/internal/common/httpclient"
)

const defaultMIMEType = "application/octet-stream"

// guessMIMEType determines the content type of an attachment. The filename
// extension is consulted first, then the file header is sniffed; unknown
// content falls back to application/octet-stream.
func guessMIMEType(path string) string {
	if mimeType := mime.TypeByExtension(filepath.Ext(path)); mimeType != "" {
		return mimeType
	}

	f, err := os.Open(path)
	if err != nil {
		return defaultMIMEType
	}
	defer f.Close()

	// 261 bytes is enough for filetype sniffing
	header := make([]byte, 261)
	n, _ := f.Read(header)
	kind, err := filetype.Match(header[:n])
	if err != nil || kind == filetype.Unknown {
		return defaultMIMEType
	}
	return kind.MIME.Value
}

// openFileParts opens the given files and returns one form part per file
// under the given field name, along with a cleanup function that closes every
// opened handle. The cleanup function must be called on every exit path.
// Paths that do not exist are skipped.
func openFileParts(fieldName string, paths []string) ([]httpclient.FormPart, func(), error) {
	var handles []*os.File
	closeAll := func() {
		for _, h := range handles {
			h.Close()
		}
	}

	var parts []httpclient.FormPart
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, ErrValidation.MsgErr("unable to open attachment "+path, err)
		}
		handles = append(handles, f)
		parts = append(parts, httpclient.FormPart{
			FieldName:   fieldName,
			FileName:    filepath.Base(path),
			ContentType: guessMIMEType(path),
			Reader:      f,
		})
	}
	return parts, closeAll, nil
}

// CreateLogWithFiles creates a new log entry and its file attachments in one
// multipart request: the entry JSON travels as a logEntry part alongside one
// files part per attachment. Paths that do not exist are skipped.
func (c *Client) CreateLogWithFiles(req LogRequest, filePaths []string) (*Log, error) {
	if len(req.Logbooks) == 0 {
		return nil, ErrValidation.New("at least one logbook must be specified")
	}

	payload, err := json.Marshal(req.payload())
	if err != nil {
		return nil, ErrValidation.MsgErr("create log with files: unable to encode log entry", err)
	}

	fileParts, closeFiles, err := openFileParts("files", filePaths)
	if err != nil {
		return nil, err
	}
	defer closeFiles()

	parts := append([]httpclient.FormPart{
		{FieldName: "logEntry", ContentType: "application/json", Reader: bytes.NewReader(payload)},
	}, fileParts...)

	body, _, err := c.http.DoMultipart(http.MethodPut, "/Olog/logs/multipart", req.queryParams(), parts)
	if err != nil {
		return nil, transportError("create log with files", err)
	}

	var created Log
	if err := decodeBody("create log with files", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UploadAttachment uploads a single file attachment to an existing log
// entry, with descriptive metadata fields. The service expects the file part
// first, followed by the filename and fileMetadataDescription fields.
func (c *Client) UploadAttachment(logID int64, filePath, description string) (*Log, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrValidation.MsgErr("file not found: "+filePath, err)
		}
		return nil, ErrValidation.MsgErr("unable to open attachment "+filePath, err)
	}
	defer f.Close()

	filename := filepath.Base(filePath)
	parts := []httpclient.FormPart{
		{FieldName: "file", FileName: filename, ContentType: defaultMIMEType, Reader: f},
		{FieldName: "filename", Reader: strings.NewReader(filename)},
		{FieldName: "fileMetadataDescription", Reader: strings.NewReader(description)},
	}

	endpoint := "/Olog/logs/attachments/" + strconv.FormatInt(logID, 10)
	body, _, err := c.http.DoMultipart(http.MethodPost, endpoint, nil, parts)
	if err != nil {
		return nil, transportError("upload attachment", err)
	}

	var updated Log
	if err := decodeBody("upload attachment", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UploadAttachments uploads multiple file attachments to an existing log
// entry in one request. Paths that do not exist are skipped.
func (c *Client) UploadAttachments(logID int64, filePaths []string) (*Log, error) {
	parts, closeFiles, err := openFileParts("file", filePaths)
	if err != nil {
		return nil, err
	}
	defer closeFiles()

	endpoint := "/Olog/logs/attachments-multi/" + strconv.FormatInt(logID, 10)
	body, _, err := c.http.DoMultipart(http.MethodPost, endpoint, nil, parts)
	if err != nil {
		return nil, transportError("upload attachments", err)
	}

	var updated Log
	if err := decodeBody("upload attachments", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DownloadAttachment downloads an attachment from a log entry by name.
// When savePath is non-empty the content is also written there, creating
// parent directories as needed.
func (c *Client) DownloadAttachment(logID int64, attachmentName, savePath string) ([]byte, error) {
	endpoint := "/Olog/logs/attachments/" + strconv.FormatInt(logID, 10) + "/" + attachmentName
	content, err := c.getRaw("download attachment", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if err := saveContent(content, savePath); err != nil {
		return nil, err
	}
	return content, nil
}

// DownloadAttachmentByID downloads an attachment by its ID. When savePath is
// non-empty the content is also written there, creating parent directories
// as needed.
func (c *Client) DownloadAttachmentByID(attachmentID, savePath string) ([]byte, error) {
	content, err := c.getRaw("download attachment", "/Olog/attachment/"+attachmentID, nil)
	if err != nil {
		return nil, err
	}
	if err := saveContent(content, savePath); err != nil {
		return nil, err
	}
	return content, nil
}

func saveContent(content []byte, savePath string) error {
	if savePath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return ErrValidation.MsgErr("unable to create directory for "+savePath, err)
	}
	if err := os.WriteFile(savePath, content, 0o644); err != nil {
		return ErrValidation.MsgErr("unable to write attachment to "+savePath, err)
	}
	return nil
}
