package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func seedProfile(t *testing.T, svc *Services) *models.Profile {
	t.Helper()
	p, err := svc.Profile.Create(context.Background(), &models.Profile{
		Name: "Surabhi Priya", Title: "Data Analyst", Tagline: "t", Intro: "i", ProfileImage: "old.jpg",
	})
	require.NoError(t, err)
	return p
}

func pngImage(data string) Image {
	return Image{Filename: "me.PNG", ContentType: "image/png", Size: int64(len(data)), Body: strings.NewReader(data)}
}

func TestUploadProfileImage(t *testing.T) {
	svc, _ := newTestServices(t)
	before := seedProfile(t, svc)
	putter := &fakePutter{}
	images := NewImageService(putter, "portfolio-assets", svc.Profile)

	profile, err := images.UploadProfileImage(context.Background(), pngImage("png-bytes"))
	require.NoError(t, err)

	require.Len(t, putter.inputs, 1)
	in := putter.inputs[0]
	assert.Equal(t, "portfolio-assets", aws.ToString(in.Bucket))
	assert.True(t, strings.HasPrefix(aws.ToString(in.Key), "profile-images/"))
	assert.True(t, strings.HasSuffix(aws.ToString(in.Key), ".png"))
	assert.Equal(t, "image/png", aws.ToString(in.ContentType))
	assert.Equal(t, []byte("png-bytes"), putter.bodies[0])

	assert.Equal(t, "https://portfolio-assets.s3.amazonaws.com/"+aws.ToString(in.Key), profile.ProfileImage)
	assert.Equal(t, before.Name, profile.Name)
	assert.True(t, profile.UpdatedAt.After(before.UpdatedAt))
}

func TestUploadProfileImageRejectsNonImages(t *testing.T) {
	svc, _ := newTestServices(t)
	seedProfile(t, svc)
	putter := &fakePutter{}
	images := NewImageService(putter, "bucket", svc.Profile)

	_, err := images.UploadProfileImage(context.Background(), Image{
		Filename: "notes.txt", ContentType: "text/plain", Size: 3, Body: bytes.NewReader([]byte("abc")),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "image", verr.Fields[0].Field)

	big := pngImage("x")
	big.Size = MaxImageSize + 1
	_, err = images.UploadProfileImage(context.Background(), big)
	require.ErrorAs(t, err, &verr)

	assert.Empty(t, putter.inputs)
}

func TestUploadProfileImageWithoutProfile(t *testing.T) {
	svc, _ := newTestServices(t)
	images := NewImageService(&fakePutter{}, "bucket", svc.Profile)

	_, err := images.UploadProfileImage(context.Background(), pngImage("x"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUploadProfileImageS3Failure(t *testing.T) {
	svc, _ := newTestServices(t)
	before := seedProfile(t, svc)
	images := NewImageService(&fakePutter{err: errors.New("boom")}, "bucket", svc.Profile)

	_, err := images.UploadProfileImage(context.Background(), pngImage("x"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))

	got, err := svc.Profile.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before.ProfileImage, got.ProfileImage)
}
