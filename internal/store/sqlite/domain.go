// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package sqlite

import (
	"database/sql"
	"encoding/json"

	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/store"
	"github.com/battlegrid/bf42con/internal/vec3"
)

// Dump writes every template, geometry, and instance in data into the
// database as a single transaction, replacing whatever rows already
// exist.
func (s *Store) Dump(data *store.WorldData) error {
	tx, err := s.db.BeginTx(s.ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"template_children", "instances", "templates", "geometries"} {
		if _, err := tx.ExecContext(s.ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, g := range data.Geometries {
		scale, err := json.Marshal(g.Scale.List())
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(s.ctx,
			`INSERT INTO geometries (type, name, scale, file, material_size, world_size, y_scale, water_level)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.Type, g.Name, string(scale), g.File, g.MaterialSize, g.WorldSize, g.YScale, g.WaterLevel,
		); err != nil {
			return err
		}
	}

	for _, t := range data.Templates {
		points := make([][]float64, 0, len(t.LinePoints))
		for _, p := range t.LinePoints {
			points = append(points, p.List())
		}
		linePoints, err := json.Marshal(points)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(s.ctx,
			`INSERT INTO templates (type, name, geometry_name, trigger_radius, line_points)
			 VALUES (?, ?, ?, ?, ?)`,
			t.Type, t.Name, t.Geometry.Name(), t.TriggerRadius, string(linePoints),
		)
		if err != nil {
			return err
		}
		templateID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for i, c := range t.Children {
			setPos, err := json.Marshal(c.SetPosition.List())
			if err != nil {
				return err
			}
			setRot, err := json.Marshal(c.SetRotation.List())
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(s.ctx,
				`INSERT INTO template_children (template_id, position, child_name, set_position, set_rotation)
				 VALUES (?, ?, ?, ?, ?)`,
				templateID, i, c.Template.Name(), string(setPos), string(setRot),
			); err != nil {
				return err
			}
		}
	}

	staticIDs := make(map[*domain.ObjectInstance]bool, len(data.StaticInstances))
	for _, inst := range data.StaticInstances {
		staticIDs[inst] = true
	}
	for _, inst := range data.Instances {
		absPos, err := json.Marshal(inst.AbsolutePosition.List())
		if err != nil {
			return err
		}
		rot, err := json.Marshal(inst.Rotation.List())
		if err != nil {
			return err
		}
		scale, err := json.Marshal(inst.GeometryScale.List())
		if err != nil {
			return err
		}
		isStatic := 0
		if staticIDs[inst] {
			isStatic = 1
		}
		if _, err := tx.ExecContext(s.ctx,
			`INSERT INTO instances (template_name, absolute_position, rotation, geometry_scale, is_static)
			 VALUES (?, ?, ?, ?, ?)`,
			inst.Template.Name(), string(absPos), string(rot), string(scale), isStatic,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reconstructs a WorldData from the database's rows, relying on
// store.WorldData.Link to resolve the name-based references Dump wrote.
func (s *Store) Load() (*store.WorldData, error) {
	data := store.New()

	geoRows, err := s.db.QueryContext(s.ctx,
		`SELECT type, name, scale, file, material_size, world_size, y_scale, water_level FROM geometries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer geoRows.Close()
	for geoRows.Next() {
		var kind, name, scaleJSON, file string
		var materialSize, worldSize int
		var yScale, waterLevel float64
		if err := geoRows.Scan(&kind, &name, &scaleJSON, &file, &materialSize, &worldSize, &yScale, &waterLevel); err != nil {
			return nil, err
		}
		g, _ := data.CreateGeometryTemplate(kind, name)
		g.Scale = vec3.FromList(floatsFromJSON(scaleJSON))
		g.File = file
		g.MaterialSize = materialSize
		g.WorldSize = worldSize
		g.YScale = yScale
		g.WaterLevel = waterLevel
	}
	if err := geoRows.Err(); err != nil {
		return nil, err
	}

	type childRow struct {
		name        string
		setPosition string
		setRotation string
	}
	tplRows, err := s.db.QueryContext(s.ctx,
		`SELECT id, type, name, geometry_name, trigger_radius, line_points FROM templates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	childrenByTemplateID := make(map[int64][]childRow)
	var tplIDs []int64
	var geometryNames []string
	for tplRows.Next() {
		var id int64
		var kind, name, geometryName, pointsJSON string
		var triggerRadius int
		if err := tplRows.Scan(&id, &kind, &name, &geometryName, &triggerRadius, &pointsJSON); err != nil {
			tplRows.Close()
			return nil, err
		}
		t, _ := data.CreateObjectTemplate(kind, name)
		t.TriggerRadius = triggerRadius
		var points [][]float64
		if err := json.Unmarshal([]byte(pointsJSON), &points); err == nil {
			for _, p := range points {
				t.LinePoints = append(t.LinePoints, vec3.FromList(p))
			}
		}
		tplIDs = append(tplIDs, id)
		geometryNames = append(geometryNames, geometryName)
	}
	tplRows.Close()
	if err := tplRows.Err(); err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	for i, id := range tplIDs {
		data.Templates[i].Geometry = domain.UnresolvedGeometry(geometryNames[i])

		childRows, err := s.db.QueryContext(s.ctx,
			`SELECT child_name, set_position, set_rotation FROM template_children WHERE template_id = ? ORDER BY position`, id)
		if err != nil {
			return nil, err
		}
		var rows []childRow
		for childRows.Next() {
			var c childRow
			if err := childRows.Scan(&c.name, &c.setPosition, &c.setRotation); err != nil {
				childRows.Close()
				return nil, err
			}
			rows = append(rows, c)
		}
		childRows.Close()
		childrenByTemplateID[id] = rows

		for _, c := range rows {
			data.Templates[i].Children = append(data.Templates[i].Children, &domain.ObjectTemplateChild{
				Template:    domain.UnresolvedTemplate(c.name),
				SetPosition: vec3.FromList(floatsFromJSON(c.setPosition)),
				SetRotation: vec3.FromList(floatsFromJSON(c.setRotation)),
			})
		}
	}

	instRows, err := s.db.QueryContext(s.ctx,
		`SELECT template_name, absolute_position, rotation, geometry_scale, is_static FROM instances ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer instRows.Close()
	for instRows.Next() {
		var templateName, absPosJSON, rotJSON, scaleJSON string
		var isStatic int
		if err := instRows.Scan(&templateName, &absPosJSON, &rotJSON, &scaleJSON, &isStatic); err != nil {
			return nil, err
		}
		inst := data.CreateInstance(domain.UnresolvedTemplate(templateName))
		inst.AbsolutePosition = vec3.FromList(floatsFromJSON(absPosJSON))
		inst.Rotation = vec3.FromList(floatsFromJSON(rotJSON))
		inst.GeometryScale = vec3.FromList(floatsFromJSON(scaleJSON))
		if isStatic != 0 {
			data.MarkStatic(inst)
		}
	}
	if err := instRows.Err(); err != nil {
		return nil, err
	}

	data.Link()

	return data, nil
}

func floatsFromJSON(raw string) []float64 {
	var out []float64
	_ = json.Unmarshal([]byte(raw), &out)
	return out
}
