package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	config "github.com/mzohaibtariq/fyp_portal/configs"
	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
)

// GenerateApprovalLetter renders a PDF approval letter for the proposal,
// uploads it and stores the URL on the record. It is called asynchronously
// after a proposal is approved; failures never undo the status change.
func GenerateApprovalLetter(proposal models.Proposal) {
	supervisorName := "the assigned supervisor"
	if proposal.Supervisor != nil {
		supervisorName = proposal.Supervisor.Name
	}

	htmlData, err := generateLetterHTML(proposal, supervisorName)
	if err != nil {
		log.Printf("🔥 Failed to generate approval letter HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate approval letter PDF: %v", err)
		return
	}

	letterURL, err := uploadLetter(pdfBytes, proposal.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload approval letter: %v", err)
		return
	}

	if err := database.DB.Model(&models.Proposal{}).
		Where("id = ?", proposal.ID).
		Update("letter_url", letterURL).Error; err != nil {
		log.Printf("🔥 Failed to save approval letter URL for proposal %s: %v", proposal.ID, err)
		return
	}

	log.Printf("✅ Generated approval letter for proposal %s.", proposal.Reference)
}

func generateLetterHTML(proposal models.Proposal, supervisorName string) (string, error) {
	tmpl, err := template.ParseFiles("templates/approval_letter.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName    string
		ProjectTitle   string
		SupervisorName string
		Domain         string
		Reference      string
		ApprovalDate   string
	}{
		StudentName:    proposal.StudentName,
		ProjectTitle:   proposal.Title,
		SupervisorName: supervisorName,
		Domain:         proposal.Domain,
		Reference:      proposal.Reference,
		ApprovalDate:   time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadLetter(pdfBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	uploadResult, err := cld.Upload.Upload(context.Background(), bytes.NewReader(pdfBytes), uploader.UploadParams{
		PublicID: fmt.Sprintf("approval_letters/%s", reference),
		Format:   "pdf",
	})
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
