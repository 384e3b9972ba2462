package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInternal is returned on internal service errors.
var ErrInternal = errors.New("service: internal error")

// RoomResponse is the room DTO.
type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Location  string    `json:"location"`
	Amenities []string  `json:"amenities"`
	CreatedAt time.Time `json:"createdAt"`
}

// EquipmentResponse is the equipment DTO.
type EquipmentResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"totalQuantity"`
	Description   string `json:"description"`
}

// RoomListResponse wraps the room catalog.
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// EquipmentListResponse wraps the equipment catalog.
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// Service reads the reference catalogs. Both endpoints are public.
type Service struct {
	roomRepo      RoomRepository
	equipmentRepo EquipmentRepository
	logger        Logger
}

// NewService creates the catalog service.
func NewService(roomRepo RoomRepository, equipmentRepo EquipmentRepository, logger Logger) *Service {
	return &Service{
		roomRepo:      roomRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// ListRooms returns every room.
func (s *Service) ListRooms(ctx context.Context) (*RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	resp := &RoomListResponse{Rooms: make([]RoomResponse, len(rooms))}
	for i, room := range rooms {
		amenities := room.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		resp.Rooms[i] = RoomResponse{
			ID:        room.ID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			Location:  room.Location,
			Amenities: amenities,
			CreatedAt: room.CreatedAt,
		}
	}
	return resp, nil
}

// ListEquipment returns the equipment catalog.
func (s *Service) ListEquipment(ctx context.Context) (*EquipmentListResponse, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment - repository error: %v", ErrInternal, err)
	}

	resp := &EquipmentListResponse{Equipment: make([]EquipmentResponse, len(items))}
	for i, item := range items {
		resp.Equipment[i] = EquipmentResponse{
			ID:            item.ID,
			Name:          item.Name,
			TotalQuantity: item.TotalQuantity,
			Description:   item.Description,
		}
	}
	return resp, nil
}
