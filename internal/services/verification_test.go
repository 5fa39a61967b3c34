package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func newVerificationService(ctrl *gomock.Controller) (
	*services.VerificationService,
	*services.MockCodeGetter,
	*services.MockScanRecorder,
	*services.MockScanCounter,
	*services.MockKafkaWriter,
) {
	mockCodes := services.NewMockCodeGetter(ctrl)
	mockRecorder := services.NewMockScanRecorder(ctrl)
	mockCounter := services.NewMockScanCounter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewVerificationService(mockCodes, mockRecorder, mockCounter, mockKafka)
	return svc, mockCodes, mockRecorder, mockCounter, mockKafka
}

func TestVerificationService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCodes, mockRecorder, mockCounter, mockKafka := newVerificationService(ctrl)

	id := uuid.New()
	code := "a1b2c3d4e5f60718293a4b5c6d7e8f90"
	activeQR := &models.QRCodeDB{
		QRCodeID:  id,
		Code:      code,
		Title:     "Launch poster",
		Data:      `{"type":"website","url":"https://example.com"}`,
		IsActive:  true,
		ScanCount: 4,
	}

	t.Run("successful scan records event and increments counter", func(t *testing.T) {
		mockCodes.EXPECT().GetByCode(gomock.Any(), code).Return(activeQR, nil)
		mockRecorder.EXPECT().
			Insert(gomock.Any(), id, "203.0.113.7", "curl/8.0", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _, _ string, deviceInfo []byte) error {
				var info models.DeviceInfo
				assert.NoError(t, json.Unmarshal(deviceInfo, &info))
				assert.Equal(t, "203.0.113.7", info.IP)
				assert.Equal(t, "curl/8.0", info.UserAgent)
				return nil
			})
		mockCounter.EXPECT().IncrementScanCount(gomock.Any(), id).Return(int64(5), nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.Verify(context.Background(), code, "203.0.113.7", "curl/8.0")
		assert.NoError(t, err)
		assert.Equal(t, id, result.ID)
		assert.Equal(t, code, result.Code)
		assert.Equal(t, "website", result.Data.Type)
		assert.Equal(t, int64(5), result.ScanCount)
	})

	t.Run("unknown code records nothing", func(t *testing.T) {
		mockCodes.EXPECT().GetByCode(gomock.Any(), "missing").Return(nil, nil)

		result, err := svc.Verify(context.Background(), "missing", "203.0.113.7", "curl/8.0")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrQRCodeNotFound)
	})

	t.Run("inactive code records nothing", func(t *testing.T) {
		mockCodes.EXPECT().GetByCode(gomock.Any(), code).Return(&models.QRCodeDB{
			QRCodeID: id,
			Code:     code,
			IsActive: false,
		}, nil)

		result, err := svc.Verify(context.Background(), code, "203.0.113.7", "curl/8.0")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrQRCodeInactive)
	})

	t.Run("expired code records nothing", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		mockCodes.EXPECT().GetByCode(gomock.Any(), code).Return(&models.QRCodeDB{
			QRCodeID:  id,
			Code:      code,
			IsActive:  true,
			ExpiresAt: &past,
		}, nil)

		result, err := svc.Verify(context.Background(), code, "203.0.113.7", "curl/8.0")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrQRCodeExpired)
	})

	t.Run("inactive wins over expired", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		mockCodes.EXPECT().GetByCode(gomock.Any(), code).Return(&models.QRCodeDB{
			QRCodeID:  id,
			Code:      code,
			IsActive:  false,
			ExpiresAt: &past,
		}, nil)

		_, err := svc.Verify(context.Background(), code, "203.0.113.7", "curl/8.0")
		assert.ErrorIs(t, err, services.ErrQRCodeInactive)
	})

	t.Run("recorder error fails the scan", func(t *testing.T) {
		mockCodes.EXPECT().GetByCode(gomock.Any(), code).Return(activeQR, nil)
		mockRecorder.EXPECT().
			Insert(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		result, err := svc.Verify(context.Background(), code, "203.0.113.7", "curl/8.0")
		assert.Nil(t, result)
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("kafka failure does not fail the scan", func(t *testing.T) {
		mockCodes.EXPECT().GetByCode(gomock.Any(), code).Return(activeQR, nil)
		mockRecorder.EXPECT().
			Insert(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		mockCounter.EXPECT().IncrementScanCount(gomock.Any(), id).Return(int64(6), nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		result, err := svc.Verify(context.Background(), code, "203.0.113.7", "curl/8.0")
		assert.NoError(t, err)
		assert.Equal(t, int64(6), result.ScanCount)
	})
}

func TestVerificationService_Verify_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCodes := services.NewMockCodeGetter(ctrl)
	mockRecorder := services.NewMockScanRecorder(ctrl)
	mockCounter := services.NewMockScanCounter(ctrl)
	svc := services.NewVerificationService(mockCodes, mockRecorder, mockCounter, nil)

	id := uuid.New()
	mockCodes.EXPECT().GetByCode(gomock.Any(), "abc").Return(&models.QRCodeDB{
		QRCodeID: id,
		Code:     "abc",
		IsActive: true,
	}, nil)
	mockRecorder.EXPECT().Insert(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCounter.EXPECT().IncrementScanCount(gomock.Any(), id).Return(int64(1), nil)

	result, err := svc.Verify(context.Background(), "abc", "203.0.113.7", "curl/8.0")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.ScanCount)
}
