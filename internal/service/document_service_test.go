package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/docspace/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_SectionsInOrder(t *testing.T) {
	f := newSeededFixture(t)

	sections, err := f.documents.Sections(context.Background(), "project-1")
	require.NoError(t, err)
	var ids []string
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"executive-summary", "objectives", "requirements", "architecture"}, ids)
}

func TestDocumentService_Section(t *testing.T) {
	f := newSeededFixture(t)

	s, err := f.documents.Section(context.Background(), "project-1", "requirements")
	require.NoError(t, err)
	assert.Equal(t, "Requirements Specification", s.Title)
	assert.Contains(t, s.Body, "Product catalog management")

	_, err = f.documents.Section(context.Background(), "project-1", "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentService_Suggestions(t *testing.T) {
	f := newSeededFixture(t)
	s, err := f.documents.Section(context.Background(), "project-1", "objectives")
	require.NoError(t, err)

	got, err := f.documents.Suggestions(context.Background(), s)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestDocumentService_Export(t *testing.T) {
	f := newSeededFixture(t)
	var buf bytes.Buffer

	require.NoError(t, f.documents.Export(context.Background(), "project-1", &buf))

	out := buf.String()
	assert.Contains(t, out, "# E-commerce Platform\n")
	assert.Contains(t, out, "- Status: In Review")
	assert.Contains(t, out, "- Documents: Proposal, SRS, Architecture")
	assert.Contains(t, out, "## Project Objectives")
	assert.Contains(t, out, "_partial, 2 comment(s)_")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("## Executive Summary")),
		bytes.Index(buf.Bytes(), []byte("## System Architecture")))

	ev := f.observer.last()
	assert.Equal(t, "export-idea", ev.Name)
	assert.Equal(t, 4, ev.Fields["sections"])
}

func TestDocumentService_Export_UnknownIdea(t *testing.T) {
	f := newSeededFixture(t)
	var buf bytes.Buffer

	err := f.documents.Export(context.Background(), "ghost", &buf)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Zero(t, buf.Len())
}
